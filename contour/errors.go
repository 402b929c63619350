// SPDX-License-Identifier: MIT

package contour

import "errors"

var (
	// ErrBadRadius is returned when the radius is not a finite value > 0.
	ErrBadRadius = errors.New("contour: radius must be finite and > 0")

	// ErrTooFewPoints is returned when fewer than two samples are requested.
	ErrTooFewPoints = errors.New("contour: at least 2 points required")

	// ErrNaNInf is returned when the center has a NaN or ±Inf component.
	ErrNaNInf = errors.New("contour: NaN or Inf in center")

	// ErrUnknownTangentMode is returned for a TangentMode outside the enum.
	ErrUnknownTangentMode = errors.New("contour: unknown tangent mode")
)
