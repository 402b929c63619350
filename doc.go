// Package cauchy is a small numerical playground for the Cauchy integral
// theorem: pick a circle in the complex plane and a test function, and see
// whether ∮_C f(z) dz vanishes, why, and what |f| looks like around it.
//
// 🚀 What is in the box?
//
//	• contour: discretized circle with samples, parameters and tangents
//	• analytic: closed set of test functions with one guarded evaluator
//	• integral: Riemann sum, pole classification, closed-form reference
//	• surface: |f(z)| on a square grid around the contour
//	• narrate: verdicts and explanations, English and Indonesian
//	• render: PNG plots of the contour and the |f| surface
//	• scenario: parameters, defaults, YAML files, environment, validation
//	• theorem: one full pass wiring all of the above
//	• cmd/cauchyviz: the command-line front end
//
// ✨ Guarantees
//
//   - Entire functions integrate to |I| < 1e-2 at 200 samples on every
//     accepted contour.
//   - 1/z over a circle enclosing the origin, and 1/(z−a) with a at the
//     center, give ≈ 2πi.
//   - A sample or grid point landing on a pole is reported as
//     analytic.ErrSingularPoint, never as Inf or NaN.
//
// Quick start:
//
//	p := scenario.Defaults()
//	p.Function = analytic.Reciprocal
//	r, err := theorem.Run(p, nil)
//	// r.Inside == true, r.Value ≈ 0+6.28319i
//
//	go run github.com/katalvlaran/cauchy/cmd/cauchyviz -func "1/z" -out plots
package cauchy
