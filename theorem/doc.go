// SPDX-License-Identifier: MIT

// Package theorem runs one full pass of the Cauchy integral explorer:
//
//  1. validate the scenario.Params;
//  2. build the contour and bind the test function to its center;
//  3. evaluate f on the contour, sum, classify and compare with the
//     closed-form value;
//  4. sample |f| over the surrounding square;
//  5. narrate the outcome in the requested language.
//
// A sample of the contour landing on a pole aborts the run with
// analytic.ErrSingularPoint. A pole on the surface grid does not: the
// report carries SurfaceErr and no surface.
//
// The package logs through log/slog and is silent until SetLogger is called.
package theorem
