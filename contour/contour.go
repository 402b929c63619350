// SPDX-License-Identifier: MIT

package contour

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Circle samples the circle center + radius·e^{it} at n uniformly spaced
// parameters t_i = 2π·i/(n−1), i = 0..n−1, and computes the tangent
// increments with the configured TangentMode.
//
// Stages:
//  1. Validate radius (finite, > 0), n (≥ 2) and center (finite).
//  2. Fill Params and Samples; the last sample is set to the first one so
//     the path closes exactly.
//  3. Fill Tangents.
//
// Complexity: O(n) time and memory.
func Circle(center complex128, radius float64, n int, opts ...Option) (*Contour, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("Circle(radius=%g): %w", radius, ErrBadRadius)
	}
	if n < MinPoints {
		return nil, fmt.Errorf("Circle(n=%d): %w", n, ErrTooFewPoints)
	}
	if cmplx.IsNaN(center) || cmplx.IsInf(center) {
		return nil, fmt.Errorf("Circle(center=%v): %w", center, ErrNaNInf)
	}

	step := 2 * math.Pi / float64(n-1)
	params := make([]float64, n)
	samples := make([]complex128, n)
	for i := 0; i < n; i++ {
		t := step * float64(i)
		params[i] = t
		sin, cos := math.Sincos(t)
		samples[i] = center + complex(radius*cos, radius*sin)
	}
	params[n-1] = 2 * math.Pi
	samples[n-1] = samples[0]

	c := &Contour{
		Center:  center,
		Radius:  radius,
		Samples: samples,
		Params:  params,
		Mode:    o.mode,
	}

	switch o.mode {
	case Gradient:
		c.Tangents = gradient(samples, 0.5)
	case RawGradient:
		c.Tangents = gradient(samples, 1)
	case Analytic:
		c.Tangents = analyticTangents(params, radius, step)
	default:
		return nil, fmt.Errorf("Circle(mode=%d): %w", int(o.mode), ErrUnknownTangentMode)
	}

	return c, nil
}

// gradient returns finite differences of z with respect to the sample index:
// (z[i+1]−z[i−1])/2 inside, z[1]−z[0] and z[n−1]−z[n−2] at the ends, the
// ends multiplied by endWeight.
func gradient(z []complex128, endWeight float64) []complex128 {
	n := len(z)
	dz := make([]complex128, n)
	w := complex(endWeight, 0)
	dz[0] = (z[1] - z[0]) * w
	dz[n-1] = (z[n-1] - z[n-2]) * w
	for i := 1; i < n-1; i++ {
		dz[i] = (z[i+1] - z[i-1]) / 2
	}

	return dz
}

// analyticTangents returns i·r·e^{it}·Δt with half weight at both ends.
func analyticTangents(params []float64, radius, step float64) []complex128 {
	n := len(params)
	dz := make([]complex128, n)
	for i, t := range params {
		sin, cos := math.Sincos(t)
		// i·(cos + i·sin) = −sin + i·cos
		dz[i] = complex(-radius*sin*step, radius*cos*step)
	}
	dz[0] /= 2
	dz[n-1] /= 2

	return dz
}

// Len returns the number of samples.
func (c *Contour) Len() int { return len(c.Samples) }

// Step returns the parameter spacing 2π/(n−1).
func (c *Contour) Step() float64 {
	return 2 * math.Pi / float64(len(c.Samples)-1)
}

// Closed reports whether the first and last samples coincide.
func (c *Contour) Closed() bool {
	n := len(c.Samples)
	return n >= MinPoints && c.Samples[0] == c.Samples[n-1]
}

// Bounds returns the lower-left and upper-right corners of the box
// enclosing the circle.
func (c *Contour) Bounds() (lo, hi complex128) {
	d := complex(c.Radius, c.Radius)
	return c.Center - d, c.Center + d
}

// Contains reports whether z lies strictly inside the circle.
func (c *Contour) Contains(z complex128) bool {
	return cmplx.Abs(z-c.Center) < c.Radius
}
