// SPDX-License-Identifier: MIT

// Package integral approximates closed contour integrals ∮_C f(z) dz over a
// discretized circle and classifies whether the function's pole lies inside.
//
// 🚀 What does it compute?
//
//	I ≈ Σ_i f(z_i)·dz_i           (Sum)
//	inside = |pole − center| < r  (Classify)
//	I* = 2πi·Res or 0             (Residue, the closed-form reference)
//
// By the Cauchy integral theorem I* = 0 when f is holomorphic on and inside
// C. For the simple poles of 1/z and 1/(z−a) the residue is 1, so I* = 2πi
// when the pole is enclosed.
//
// ⚙️ Usage:
//
//	c, _ := contour.Circle(0, 1, 200)
//	f := analytic.Bind(analytic.Reciprocal, c.Center)
//	res, err := integral.Evaluate(f, c, nil)
//	// res.Value ≈ 6.2832i, res.Inside == true
//
// Errors:
//   - ErrNilContour, ErrLengthMismatch, ErrBadTolerance
//   - analytic.ErrSingularPoint when a sample lands on the pole
//   - analytic.ErrUnknownKind for a function without a singularity rule
package integral
