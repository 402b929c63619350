// SPDX-License-Identifier: MIT

package surface

import "errors"

const (
	// DefaultSize is the number of grid points per axis.
	DefaultSize = 100

	// MaxSize bounds the grid to MaxSize×MaxSize points.
	MaxSize = 100

	// DefaultSpan is the half-width of the grid in units of the radius.
	DefaultSpan = 1.5
)

var (
	// ErrBadSize indicates Size outside [2, MaxSize].
	ErrBadSize = errors.New("surface: size must be in [2, 100]")

	// ErrBadSpan indicates a Span that is not finite and > 0.
	ErrBadSpan = errors.New("surface: span must be finite and > 0")

	// ErrBadRadius indicates a radius that is not finite and > 0.
	ErrBadRadius = errors.New("surface: radius must be finite and > 0")

	// ErrOutOfRange indicates a grid index outside the grid.
	ErrOutOfRange = errors.New("surface: index out of range")
)

// Options configures Sample.
type Options struct {
	Size int     // points per axis, 2..MaxSize
	Span float64 // half-width in radii
}

// DefaultOptions returns Options{Size: DefaultSize, Span: DefaultSpan}.
func DefaultOptions() Options {
	return Options{Size: DefaultSize, Span: DefaultSpan}
}

// Grid is an immutable Size×Size magnitude field.
type Grid struct {
	Xs, Ys []float64 // axis coordinates, ascending

	mag      []float64 // row-major, len == len(Xs)*len(Ys)
	min, max float64
}
