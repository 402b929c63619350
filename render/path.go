// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/cauchy/contour"
)

// PathPlot draws the contour c on equal-aspect axes and writes a PNG to w.
//
// The view covers the contour, its center and every marker. The contour is a
// blue polyline through c.Samples, the center a red "x", the markers green
// dots. A nil opts means DefaultOptions().
func PathPlot(w io.Writer, c *contour.Contour, opts *Options) error {
	if c == nil || c.Len() == 0 {
		return fmt.Errorf("PathPlot: %w", ErrNilInput)
	}
	if opts == nil {
		d := DefaultOptions()
		opts = &d
	}
	if err := opts.validate(); err != nil {
		return fmt.Errorf("PathPlot(%dx%d): %w", opts.Width, opts.Height, err)
	}

	lo, hi := c.Bounds()
	for _, m := range opts.Markers {
		lo = complex(min(real(lo), real(m)), min(imag(lo), imag(m)))
		hi = complex(max(real(hi), real(m)), max(imag(hi), imag(m)))
	}

	cv, err := newCanvas(*opts)
	if err != nil {
		return fmt.Errorf("PathPlot: %w", err)
	}
	margin := 3.5 * opts.FontSize
	fr := newFrame(lo, hi, opts.Width, opts.Height, margin)
	drawAxes(cv, fr, opts.FontSize)

	x, y := fr.px(c.Samples[0])
	cv.dc.MoveTo(x, y)
	for _, z := range c.Samples[1:] {
		x, y = fr.px(z)
		cv.dc.LineTo(x, y)
	}
	cv.stroke(pathInk, 2.5)

	cx, cy := fr.px(c.Center)
	const arm = 6
	cv.line(cx-arm, cy-arm, cx+arm, cy+arm, centerInk, 2.5)
	cv.line(cx-arm, cy+arm, cx+arm, cy-arm, centerInk, 2.5)

	for _, m := range opts.Markers {
		mx, my := fr.px(m)
		cv.dc.DrawCircle(mx, my, 5)
		cv.fill(markerInk)
	}

	title := opts.Title
	if title == "" {
		title = "Contour path"
	}
	cv.text(title, float64(opts.Width)/2, fr.top-opts.FontSize, 0.5, 0, ink)

	return cv.finish(w)
}

// drawAxes draws the frame, grid lines, tick labels and axis titles.
func drawAxes(cv *canvas, fr frame, fontSize float64) {
	right, bottom := fr.left+fr.size, fr.top+fr.size

	xs := ticks(fr.x0, fr.x0+fr.span, 6)
	ys := ticks(fr.y0, fr.y0+fr.span, 6)
	for _, v := range xs {
		px, _ := fr.px(complex(v, fr.y0))
		cv.line(px, fr.top, px, bottom, gridInk, 1)
		cv.text(formatTick(v), px, bottom+fontSize*0.4, 0.5, 1, ink)
	}
	for _, v := range ys {
		_, py := fr.px(complex(fr.x0, v))
		cv.line(fr.left, py, right, py, gridInk, 1)
		cv.text(formatTick(v), fr.left-fontSize*0.4, py, 1, 0.35, ink)
	}

	cv.dc.DrawRectangle(fr.left, fr.top, fr.size, fr.size)
	cv.stroke(ink, 1)

	cv.text("Re(z)", (fr.left+right)/2, bottom+fontSize*2.2, 0.5, 1, ink)
	cv.text("Im(z)", fr.left-fontSize*0.4, fr.top-fontSize*0.4, 1, 0, ink)
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
