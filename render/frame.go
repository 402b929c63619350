// SPDX-License-Identifier: MIT

package render

import "math"

// frame maps world coordinates onto a square plot area with equal aspect.
type frame struct {
	x0, y0 float64 // world lower-left
	span   float64 // world width == height
	left   float64 // pixel x of x0
	top    float64 // pixel y of y0+span
	size   float64 // pixel width == height
}

// newFrame fits the world box [lo, hi] (with 8% padding, squared up) into a
// w×h image leaving margin pixels on every side.
func newFrame(lo, hi complex128, w, h int, margin float64) frame {
	dx, dy := real(hi)-real(lo), imag(hi)-imag(lo)
	span := math.Max(dx, dy) * 1.16
	if span <= 0 {
		span = 1
	}
	cx, cy := (real(lo)+real(hi))/2, (imag(lo)+imag(hi))/2

	size := math.Min(float64(w), float64(h)) - 2*margin
	return frame{
		x0:   cx - span/2,
		y0:   cy - span/2,
		span: span,
		left: (float64(w) - size) / 2,
		top:  (float64(h) - size) / 2,
		size: size,
	}
}

// px returns the pixel position of z.
func (f frame) px(z complex128) (float64, float64) {
	x := f.left + (real(z)-f.x0)/f.span*f.size
	y := f.top + (f.y0+f.span-imag(z))/f.span*f.size
	return x, y
}

// ticks returns tick positions covering [lo, hi] at a 1/2/5·10^k step
// giving about target intervals.
func ticks(lo, hi float64, target int) []float64 {
	raw := (hi - lo) / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			step = m * mag
			break
		}
	}
	var out []float64
	for k := math.Ceil(lo/step - 1e-9); k*step <= hi+step*1e-9; k++ {
		v := k * step
		if k == 0 {
			v = 0
		}
		out = append(out, v)
	}
	return out
}
