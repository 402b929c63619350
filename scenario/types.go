// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"

	"github.com/katalvlaran/cauchy/analytic"
)

var (
	// ErrOutOfRange indicates a parameter outside its accepted range.
	ErrOutOfRange = errors.New("scenario: parameter out of range")

	// ErrBadEnv indicates an environment variable that does not parse.
	ErrBadEnv = errors.New("scenario: malformed environment value")
)

// Accepted ranges, inclusive.
const (
	MinRadius = 0.1
	MaxRadius = 5.0
	MinCenter = -5.0
	MaxCenter = 5.0
	MinPoints = 20
	MaxPoints = 500
)

// Params is one complete, resolved parameter set.
type Params struct {
	Radius   float64       `yaml:"radius" json:"radius"`
	CenterX  float64       `yaml:"center_x" json:"center_x"`
	CenterY  float64       `yaml:"center_y" json:"center_y"`
	Points   int           `yaml:"points" json:"points"`
	Function analytic.Kind `yaml:"function" json:"function"`
	Lang     string        `yaml:"lang" json:"lang"`
}

// Center returns CenterX + i·CenterY.
func (p Params) Center() complex128 { return complex(p.CenterX, p.CenterY) }

// Patch is a partial Params; nil fields are absent.
type Patch struct {
	Radius   *float64       `yaml:"radius"`
	CenterX  *float64       `yaml:"center_x"`
	CenterY  *float64       `yaml:"center_y"`
	Points   *int           `yaml:"points"`
	Function *analytic.Kind `yaml:"function"`
	Lang     *string        `yaml:"lang"`
}
