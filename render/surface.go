// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/cauchy/surface"
)

// cell is one grid quad ready to paint.
type cell struct {
	pts   [4][2]float64
	depth float64
	level float64
}

// SurfacePlot draws |f| over g as a shaded 3D surface and writes a PNG to w.
//
// Heights are clamped at opts.ZCap and normalized to [0, 1]; quads are
// painted back to front and coloured on the viridis scale by their mean
// height. A colour bar on the right shows the clamped range. A nil opts
// means DefaultOptions().
func SurfacePlot(w io.Writer, g *surface.Grid, opts *Options) error {
	if g == nil || g.Size() < 2 {
		return fmt.Errorf("SurfacePlot: %w", ErrNilInput)
	}
	if opts == nil {
		d := DefaultOptions()
		opts = &d
	}
	if err := opts.validate(); err != nil {
		return fmt.Errorf("SurfacePlot(%dx%d): %w", opts.Width, opts.Height, err)
	}

	lo, hi := g.Range()
	hi, height := heightScale(lo, hi, opts.ZCap)

	cv, err := newCanvas(*opts)
	if err != nil {
		return fmt.Errorf("SurfacePlot: %w", err)
	}

	n := g.Size()
	rows := make([][]float64, n)
	for iy := range rows {
		if rows[iy], err = g.Row(iy); err != nil {
			_ = cv.dc.Close()
			return fmt.Errorf("SurfacePlot: %w", err)
		}
	}
	sinAz, cosAz := math.Sincos(opts.Azimuth * math.Pi / 180)
	sinEl, cosEl := math.Sincos(opts.Elevation * math.Pi / 180)
	// project maps grid indices and a normalized height to unit screen
	// coordinates (v grows upward) and a depth (larger is farther).
	project := func(ix, iy int, h float64) (u, v, depth float64) {
		x := float64(ix)/float64(n-1) - 0.5
		y := float64(iy)/float64(n-1) - 0.5
		xr := x*cosAz - y*sinAz
		yr := x*sinAz + y*cosAz
		return xr, yr*sinEl + (h-0.5)*cosEl*0.8, yr
	}

	cells := make([]cell, 0, (n-1)*(n-1))
	var uMin, uMax, vMin, vMax = math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	corners := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for iy := 0; iy < n-1; iy++ {
		for ix := 0; ix < n-1; ix++ {
			var c cell
			for k, d := range corners {
				h := height(rows[iy+d[1]][ix+d[0]])
				u, v, depth := project(ix+d[0], iy+d[1], h)
				c.pts[k] = [2]float64{u, v}
				c.depth += depth / 4
				c.level += h / 4
				uMin, uMax = math.Min(uMin, u), math.Max(uMax, u)
				vMin, vMax = math.Min(vMin, v), math.Max(vMax, v)
			}
			cells = append(cells, c)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].depth > cells[j].depth })

	margin := 3 * opts.FontSize
	barWidth := 4 * opts.FontSize
	areaW := float64(opts.Width) - 2*margin - barWidth
	areaH := float64(opts.Height) - 2*margin
	scale := math.Min(areaW/(uMax-uMin), areaH/(vMax-vMin))
	offX := margin + (areaW-scale*(uMax-uMin))/2
	offY := margin + (areaH-scale*(vMax-vMin))/2
	toPx := func(p [2]float64) (float64, float64) {
		return offX + (p[0]-uMin)*scale, offY + (vMax-p[1])*scale
	}

	edge := gg.RGBA{R: 0, G: 0, B: 0, A: 0.15}
	for _, c := range cells {
		for k, p := range c.pts {
			x, y := toPx(p)
			if k == 0 {
				cv.dc.MoveTo(x, y)
				continue
			}
			cv.dc.LineTo(x, y)
		}
		cv.dc.ClosePath()
		cv.fill(Viridis(c.level))

		for k, p := range c.pts {
			x, y := toPx(p)
			if k == 0 {
				cv.dc.MoveTo(x, y)
				continue
			}
			cv.dc.LineTo(x, y)
		}
		cv.dc.ClosePath()
		cv.stroke(edge, 0.5)
	}

	drawColorBar(cv, float64(opts.Width)-margin-barWidth*0.6, margin, barWidth*0.3, areaH, lo, hi, opts.FontSize)

	title := opts.Title
	if title == "" {
		title = "|f(z)|"
	}
	cv.text(title, float64(opts.Width)/2, margin-opts.FontSize*0.6, 0.5, 0, ink)

	return cv.finish(w)
}

// heightScale returns the clamped top of the range and a map from magnitude
// to [0, 1].
// Magnitudes above max(zcap, lo) are clamped, so a grid lying entirely above
// zcap keeps its own relief. zcap ≤ 0 or NaN disables clamping.
func heightScale(lo, hi, zcap float64) (float64, func(float64) float64) {
	limit := math.Inf(1)
	if zcap > 0 {
		limit = math.Max(zcap, lo)
	}
	hi = math.Min(hi, limit)
	return hi, func(m float64) float64 {
		if hi-lo <= 0 {
			return 0
		}
		return (math.Min(m, limit) - lo) / (hi - lo)
	}
}

// drawColorBar paints the viridis scale bottom (lo) to top (hi) with labels.
func drawColorBar(cv *canvas, x, y, w, h, lo, hi, fontSize float64) {
	const steps = 64
	band := h / steps
	for i := 0; i < steps; i++ {
		t := (float64(i) + 0.5) / steps
		cv.dc.DrawRectangle(x, y+h-float64(i+1)*band, w, band+0.5)
		cv.fill(Viridis(t))
	}
	cv.dc.DrawRectangle(x, y, w, h)
	cv.stroke(ink, 1)

	cv.text(formatTick(hi), x+w/2, y-fontSize*0.3, 0.5, 0, ink)
	cv.text(formatTick(lo), x+w/2, y+h+fontSize*0.3, 0.5, 1, ink)
}
