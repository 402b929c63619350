// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrNilInput indicates a nil contour or grid.
	ErrNilInput = errors.New("render: nil input")

	// ErrBadSize indicates an image dimension below MinSize.
	ErrBadSize = errors.New("render: image too small")
)

// MinSize is the smallest accepted width or height in pixels.
const MinSize = 160

// DefaultMarkers are the decorative points drawn next to the contour. They
// never take part in any computation.
var DefaultMarkers = []complex128{complex(2, 1), complex(-1.5, -2)}

// Options configures both plots.
type Options struct {
	Width, Height int
	FontSize      float64

	// Title overrides the default figure title.
	Title string

	// Markers are drawn as green dots by PathPlot.
	Markers []complex128

	// ZCap clamps |f| in SurfacePlot so poles do not flatten the rest.
	ZCap float64

	// Azimuth and Elevation orient the SurfacePlot camera, in degrees.
	Azimuth, Elevation float64
}

// DefaultOptions returns a 720×720 figure, 14pt labels, the default markers
// and a surface camera at 35° azimuth, 30° elevation with ZCap 10.
func DefaultOptions() Options {
	return Options{
		Width:     720,
		Height:    720,
		FontSize:  14,
		Markers:   DefaultMarkers,
		ZCap:      10,
		Azimuth:   35,
		Elevation: 30,
	}
}

func (o Options) validate() error {
	if o.Width < MinSize || o.Height < MinSize {
		return ErrBadSize
	}
	return nil
}
