// SPDX-License-Identifier: MIT

// Package analytic defines the closed set of test functions used to
// illustrate the Cauchy integral theorem, together with their singularity
// table.
//
// What:
//
//   - Kind enumerates z², 1/z, exp(z), 1/(z−a) and sin(z).
//   - Function binds a Kind to its parameter a (the pole of 1/(z−a)).
//   - Eval / EvalAll are the only evaluation entry points. Both apply the
//     same near-zero denominator guard and report ErrSingularPoint instead of
//     producing ±Inf or NaN.
//   - Pole / Entire / Encloses expose the singularity table. The table is
//     closed: a Kind without a rule yields ErrUnknownKind, never "no pole".
//
// Errors:
//
//   - ErrUnknownKind: Kind outside the enum, or unparsable name.
//   - ErrSingularPoint: a sample lies on a pole (|denominator| ≤ Eps).
//   - ErrNaNInf: non-finite input or output.
package analytic
