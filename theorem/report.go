// SPDX-License-Identifier: MIT

package theorem

import (
	"github.com/katalvlaran/cauchy/contour"
	"github.com/katalvlaran/cauchy/narrate"
	"github.com/katalvlaran/cauchy/scenario"
	"github.com/katalvlaran/cauchy/surface"
)

// Complex is a JSON-friendly complex number.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func newComplex(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

// Value returns Re + i·Im.
func (c Complex) Value() complex128 { return complex(c.Re, c.Im) }

// Report is the outcome of Run.
type Report struct {
	Params scenario.Params `json:"params"`
	Label  string          `json:"label"`

	Inside    bool    `json:"inside"`
	Value     Complex `json:"value"`
	Reference Complex `json:"reference"`
	AbsError  float64 `json:"abs_error"`
	NearZero  bool    `json:"near_zero"`
	Tolerance float64 `json:"tolerance"`

	SurfaceMin float64 `json:"surface_min"`
	SurfaceMax float64 `json:"surface_max"`
	SurfaceErr string  `json:"surface_error,omitempty"`

	Messages []narrate.Message `json:"messages"`

	Contour *contour.Contour `json:"-"`
	Surface *surface.Grid    `json:"-"` // nil when SurfaceErr is set
}
