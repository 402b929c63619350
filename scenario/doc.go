// SPDX-License-Identifier: MIT

// Package scenario holds the user-facing parameter set of one explorer run:
// contour radius and center, number of samples, test function and output
// language.
//
// Values are layered, later sources winning:
//
//	Defaults() → YAML file (Load) → environment (EnvOverlay) → command line
//
// Each layer is a Patch whose nil fields leave the value below untouched, so
// an explicit zero (a center at 0, say) still overrides. Validate checks the
// final Params against the accepted ranges.
package scenario
