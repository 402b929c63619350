// SPDX-License-Identifier: MIT

// Package render draws the two figures of the explorer as PNG images with
// the pure-Go software rasterizer of github.com/gogpu/gg:
//
//   - PathPlot: the contour in the complex plane with its center and the
//     decorative reference points, on equal-aspect axes.
//   - SurfacePlot: the magnitude |f(z)| over a surface.Grid as a shaded
//     3D surface in oblique projection.
//
// Labels use the Go Regular font bundled with golang.org/x/image, so no
// system fonts are needed.
package render
