// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/cauchy/analytic"
)

// Sample evaluates |f| on the grid around (center, radius).
// A nil opts means DefaultOptions().
//
// Stages:
//  1. Validate radius and options.
//  2. Build both axes with linspace(c − Span·r, c + Span·r, Size).
//  3. Evaluate row by row; the first failing point aborts with its indices.
//
// Complexity: O(Size²).
func Sample(f analytic.Function, center complex128, radius float64, opts *Options) (*Grid, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("Sample(radius=%g): %w", radius, ErrBadRadius)
	}
	if o.Size < 2 || o.Size > MaxSize {
		return nil, fmt.Errorf("Sample(size=%d): %w", o.Size, ErrBadSize)
	}
	if math.IsNaN(o.Span) || math.IsInf(o.Span, 0) || o.Span <= 0 {
		return nil, fmt.Errorf("Sample(span=%g): %w", o.Span, ErrBadSpan)
	}

	half := o.Span * radius
	xs := linspace(real(center)-half, real(center)+half, o.Size)
	ys := linspace(imag(center)-half, imag(center)+half, o.Size)

	g := &Grid{
		Xs:  xs,
		Ys:  ys,
		mag: make([]float64, o.Size*o.Size),
		min: math.Inf(1),
		max: math.Inf(-1),
	}
	for iy, y := range ys {
		for ix, x := range xs {
			w, err := f.Eval(complex(x, y))
			if err != nil {
				return nil, fmt.Errorf("Sample[%d,%d]: %w", ix, iy, err)
			}
			m := cmplx.Abs(w)
			g.mag[iy*o.Size+ix] = m
			g.min = math.Min(g.min, m)
			g.max = math.Max(g.max, m)
		}
	}

	return g, nil
}

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// Size returns the number of points per axis.
func (g *Grid) Size() int { return len(g.Xs) }

// InBounds reports whether (ix, iy) addresses a grid point.
func (g *Grid) InBounds(ix, iy int) bool {
	n := len(g.Xs)
	return ix >= 0 && ix < n && iy >= 0 && iy < n
}

// At returns |f| at (Xs[ix], Ys[iy]).
func (g *Grid) At(ix, iy int) (float64, error) {
	if !g.InBounds(ix, iy) {
		return 0, fmt.Errorf("At(%d,%d): %w", ix, iy, ErrOutOfRange)
	}
	return g.mag[iy*len(g.Xs)+ix], nil
}

// Row returns a copy of row iy.
func (g *Grid) Row(iy int) ([]float64, error) {
	if !g.InBounds(0, iy) {
		return nil, fmt.Errorf("Row(%d): %w", iy, ErrOutOfRange)
	}
	n := len(g.Xs)
	out := make([]float64, n)
	copy(out, g.mag[iy*n:(iy+1)*n])
	return out, nil
}

// Range returns the smallest and largest magnitude on the grid.
func (g *Grid) Range() (lo, hi float64) { return g.min, g.max }
