// SPDX-License-Identifier: MIT

package integral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/cauchy/analytic"
	"github.com/katalvlaran/cauchy/contour"
)

// twoPiI is 2πi, the integral of 1/(z−a) around a circle enclosing a.
const twoPiI = complex(0, 2*math.Pi)

// Sum returns Σ fz[i]·c.Tangents[i].
//
// fz must be aligned with c.Samples. The sum is accumulated in sample order.
// Complexity: O(n).
func Sum(c *contour.Contour, fz []complex128) (complex128, error) {
	if c == nil {
		return 0, ErrNilContour
	}
	if len(fz) != len(c.Tangents) {
		return 0, fmt.Errorf("Sum: %d values for %d tangents: %w", len(fz), len(c.Tangents), ErrLengthMismatch)
	}

	var acc complex128
	for i, w := range fz {
		acc += w * c.Tangents[i]
	}
	return acc, nil
}

// Classify reports whether the pole of f lies strictly inside the circle
// (center, radius). Entire functions are never inside.
func Classify(f analytic.Function, center complex128, radius float64) (bool, error) {
	inside, err := f.Encloses(center, radius)
	if err != nil {
		return false, fmt.Errorf("Classify: %w", err)
	}
	return inside, nil
}

// Residue returns the exact value of ∮_C f(z) dz for the circle (center,
// radius): 2πi when the simple pole of f is enclosed, 0 otherwise. A pole on
// the boundary follows Classify and yields 0.
func Residue(f analytic.Function, center complex128, radius float64) (complex128, error) {
	inside, err := Classify(f, center, radius)
	if err != nil {
		return 0, err
	}
	return reference(inside), nil
}

// reference maps the verdict to the closed-form value. Both 1/z and 1/(z−a)
// have residue 1 at their pole.
func reference(inside bool) complex128 {
	if inside {
		return twoPiI
	}
	return 0
}

// NearZero reports |v| < tol.
func NearZero(v complex128, tol float64) bool {
	return cmplx.Abs(v) < tol
}

// Evaluate runs one full pass over c: evaluates f at every sample through
// the guarded entry point, sums the Riemann series, classifies the pole and
// compares against the closed-form value.
//
// A nil opts means DefaultOptions().
//
// Stages:
//  1. Validate inputs and options.
//  2. Classify (fails fast on a kind without a rule).
//  3. Evaluate f on the samples; a sample on the pole returns
//     analytic.ErrSingularPoint.
//  4. Sum and compare.
func Evaluate(f analytic.Function, c *contour.Contour, opts *Options) (Result, error) {
	if c == nil {
		return Result{}, ErrNilContour
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance <= 0 {
		return Result{}, fmt.Errorf("Evaluate(tol=%g): %w", o.Tolerance, ErrBadTolerance)
	}

	inside, err := Classify(f, c.Center, c.Radius)
	if err != nil {
		return Result{}, err
	}
	ref := reference(inside)

	values, err := f.EvalAll(c.Samples, nil)
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate %s: %w", f, err)
	}

	sum, err := Sum(c, values)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Value:     sum,
		Inside:    inside,
		Reference: ref,
		AbsError:  cmplx.Abs(sum - ref),
		NearZero:  NearZero(sum, o.Tolerance),
		Values:    values,
	}, nil
}
