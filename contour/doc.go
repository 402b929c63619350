// SPDX-License-Identifier: MIT

// Package contour builds discretized closed contours in the complex plane.
//
// 🚀 What is a contour here?
//
//	A circle C = { center + radius·e^{it} : t ∈ [0, 2π] } sampled at n
//	uniformly spaced parameters, inclusive of both ends. Because t=0 and
//	t=2π map to the same point, the last sample repeats the first and the
//	path is geometrically closed.
//
// ✨ Every Contour carries two aligned sequences:
//   - Samples: z_0 … z_{n−1} on the circle, in parameter order
//   - Tangents: dz_0 … dz_{n−1}, the per-sample increment used by a
//     Riemann sum Σ f(z_i)·dz_i
//
// Tangent schemes (see TangentMode):
//   - Gradient: finite differences of Samples, central at interior
//     indices, one-sided at both ends, ends weighted by ½ (default)
//   - RawGradient: same differences with unit end weights
//   - Analytic: i·radius·e^{i t_i}·Δt, ends weighted by ½
//
// RawGradient is the literal numpy.gradient layout over the sample array.
// It counts the seam sample once more than the trapezoidal rule does,
// leaving a residue of about f(z_0)·z'(0)·Δt (≈0.09 for exp(z) on the unit
// circle at n=200); pick it to reproduce numpy-based results exactly.
//
// ⚙️ Usage:
//
//	c, err := contour.Circle(0, 1, 200)
//	if err != nil {
//	  // ErrBadRadius, ErrTooFewPoints or ErrNaNInf
//	}
//	for i, z := range c.Samples { _ = c.Tangents[i]; _ = z }
//
// Complexity: O(n) time and memory.
package contour
