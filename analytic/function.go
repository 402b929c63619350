// SPDX-License-Identifier: MIT

package analytic

import (
	"fmt"
	"math/cmplx"
)

// Eps is the denominator modulus at or below which Eval reports
// ErrSingularPoint.
const Eps = 1e-12

// Function is a Kind bound to its parameter.
// A is the pole of ShiftedReciprocal and is ignored by the other kinds.
type Function struct {
	Kind Kind
	A    complex128
}

// Bind returns the Function for kind on a contour centered at center.
// ShiftedReciprocal places its pole at the center.
func Bind(kind Kind, center complex128) Function {
	f := Function{Kind: kind}
	if kind == ShiftedReciprocal {
		f.A = center
	}
	return f
}

// String returns the formula label.
func (f Function) String() string { return f.Kind.Label() }

// Eval returns f(z).
//
// Errors:
//   - ErrNaNInf if z or the result is not finite.
//   - ErrSingularPoint if a denominator has modulus ≤ Eps.
//   - ErrUnknownKind if f.Kind is outside the enum.
func (f Function) Eval(z complex128) (complex128, error) {
	if !finite(z) {
		return 0, fmt.Errorf("Eval(%v): %w", z, ErrNaNInf)
	}

	var w complex128
	switch f.Kind {
	case Square:
		w = z * z
	case Reciprocal:
		if cmplx.Abs(z) <= Eps {
			return 0, fmt.Errorf("Eval(%v): pole at 0: %w", z, ErrSingularPoint)
		}
		w = 1 / z
	case Exponential:
		w = cmplx.Exp(z)
	case ShiftedReciprocal:
		d := z - f.A
		if cmplx.Abs(d) <= Eps {
			return 0, fmt.Errorf("Eval(%v): pole at %v: %w", z, f.A, ErrSingularPoint)
		}
		w = 1 / d
	case Sine:
		w = cmplx.Sin(z)
	default:
		return 0, fmt.Errorf("Eval(%v): %w", f.Kind, ErrUnknownKind)
	}

	if !finite(w) {
		return 0, fmt.Errorf("Eval(%v): result %v: %w", z, w, ErrNaNInf)
	}
	return w, nil
}

// EvalAll evaluates f elementwise over zs into dst and returns dst.
// dst is allocated when its capacity is short. Evaluation stops at the
// first failing element; the returned error names its index.
func (f Function) EvalAll(zs, dst []complex128) ([]complex128, error) {
	if cap(dst) < len(zs) {
		dst = make([]complex128, len(zs))
	}
	dst = dst[:len(zs)]
	for i, z := range zs {
		w, err := f.Eval(z)
		if err != nil {
			return nil, fmt.Errorf("EvalAll[%d]: %w", i, err)
		}
		dst[i] = w
	}
	return dst, nil
}

// Pole returns the location of the simple pole and true, or (0, false) for
// an entire function. Kinds outside the enum return ErrUnknownKind.
func (f Function) Pole() (complex128, bool, error) {
	switch f.Kind {
	case Reciprocal:
		return 0, true, nil
	case ShiftedReciprocal:
		return f.A, true, nil
	case Square, Exponential, Sine:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("Pole(%v): %w", f.Kind, ErrUnknownKind)
	}
}

// Entire reports whether the kind has no singularity in the finite plane.
func (k Kind) Entire() bool {
	return k == Square || k == Exponential || k == Sine
}

// Encloses reports whether the pole of f lies strictly inside the disk
// |z − center| < radius. A pole on the boundary is outside. Entire
// functions are never enclosed.
func (f Function) Encloses(center complex128, radius float64) (bool, error) {
	switch f.Kind {
	case Reciprocal:
		return cmplx.Abs(0-center) < radius, nil
	case ShiftedReciprocal:
		// Bind puts a on the center, so this holds for every bound function.
		return cmplx.Abs(f.A-center) < radius, nil
	case Square, Exponential, Sine:
		return false, nil
	default:
		return false, fmt.Errorf("Encloses(%v): %w", f.Kind, ErrUnknownKind)
	}
}

func finite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}
