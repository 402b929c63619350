// SPDX-License-Identifier: MIT

// Package surface samples the magnitude |f(z)| of an analytic.Function on a
// square grid around a contour, for the 3D surface view.
//
// The grid spans center ± Span·radius on both axes with Size points per
// axis, endpoints included. Every grid point goes through
// analytic.Function.Eval, so a grid point on a pole is reported as
// analytic.ErrSingularPoint exactly as it would be on the contour.
//
// Storage is row-major: row iy holds the points with imaginary part Ys[iy].
package surface
