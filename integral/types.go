// SPDX-License-Identifier: MIT

package integral

import "errors"

// DefaultTolerance is the |I| threshold below which a result counts as zero.
const DefaultTolerance = 1e-2

var (
	// ErrNilContour indicates a nil *contour.Contour argument.
	ErrNilContour = errors.New("integral: contour is nil")

	// ErrLengthMismatch indicates that values and tangents differ in length.
	ErrLengthMismatch = errors.New("integral: values and contour length differ")

	// ErrBadTolerance indicates a tolerance that is not finite and > 0.
	ErrBadTolerance = errors.New("integral: tolerance must be finite and > 0")
)

// Options configures Evaluate.
//
// Fields:
//   - Tolerance: |I| below this value is reported as NearZero.
type Options struct {
	Tolerance float64
}

// DefaultOptions returns Options{Tolerance: DefaultTolerance}.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Result is the outcome of one Evaluate pass.
type Result struct {
	// Value is the Riemann-sum estimate of ∮_C f(z) dz.
	Value complex128

	// Inside reports whether the pole of f lies strictly inside C.
	Inside bool

	// Reference is the closed-form value of the integral (0 or 2πi).
	Reference complex128

	// AbsError is |Value − Reference|.
	AbsError float64

	// NearZero reports |Value| < Tolerance.
	NearZero bool

	// Values holds f(z_i) in sample order.
	Values []complex128
}
