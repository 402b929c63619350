// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cauchy/analytic"
	"github.com/katalvlaran/cauchy/contour"
	"github.com/katalvlaran/cauchy/surface"
)

func decode(t *testing.T, buf *bytes.Buffer) image.Image {
	t.Helper()
	img, err := png.Decode(buf)
	require.NoError(t, err)
	return img
}

func rgb(img image.Image, x, y float64) (r, g, b uint32) {
	r, g, b, _ = img.At(int(math.Floor(x)), int(math.Floor(y))).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestPathPlot(t *testing.T) {
	c, err := contour.Circle(0, 1, 200)
	require.NoError(t, err)

	opts := DefaultOptions()
	var buf bytes.Buffer
	require.NoError(t, PathPlot(&buf, c, &opts))
	img := decode(t, &buf)
	assert.Equal(t, image.Rect(0, 0, opts.Width, opts.Height), img.Bounds())

	// Corner is background.
	r, g, b := rgb(img, 1, 1)
	assert.Equal(t, [3]uint32{255, 255, 255}, [3]uint32{r, g, b})

	// Recompute the layout used by PathPlot.
	lo, hi := c.Bounds()
	for _, m := range opts.Markers {
		lo = complex(min(real(lo), real(m)), min(imag(lo), imag(m)))
		hi = complex(max(real(hi), real(m)), max(imag(hi), imag(m)))
	}
	fr := newFrame(lo, hi, opts.Width, opts.Height, 3.5*opts.FontSize)

	x, y := fr.px(c.Center)
	r, g, b = rgb(img, x, y)
	assert.Greater(t, r, g, "center mark is red")
	assert.Greater(t, r, b, "center mark is red")

	x, y = fr.px(c.Samples[50])
	r, g, b = rgb(img, x, y)
	assert.Greater(t, b, r, "contour is blue")

	for _, m := range opts.Markers {
		x, y = fr.px(m)
		r, g, b = rgb(img, x, y)
		assert.Greater(t, g, r, "marker %v is green", m)
		assert.Greater(t, g, b, "marker %v is green", m)
	}
}

func TestPathPlotNilOptions(t *testing.T) {
	c, err := contour.Circle(complex(1, -1), 0.5, 40)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PathPlot(&buf, c, nil))
	img := decode(t, &buf)
	assert.Equal(t, 720, img.Bounds().Dx())
}

func TestSurfacePlot(t *testing.T) {
	for _, k := range analytic.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			f := analytic.Bind(k, 0)
			g, err := surface.Sample(f, 0, 1, &surface.Options{Size: 20, Span: surface.DefaultSpan})
			require.NoError(t, err)

			opts := DefaultOptions()
			opts.Width, opts.Height = 400, 300
			var buf bytes.Buffer
			require.NoError(t, SurfacePlot(&buf, g, &opts))
			img := decode(t, &buf)
			assert.Equal(t, image.Rect(0, 0, 400, 300), img.Bounds())

			r, gr, b := rgb(img, 1, 1)
			assert.Equal(t, [3]uint32{255, 255, 255}, [3]uint32{r, gr, b})
		})
	}
}

func TestPlotErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, PathPlot(&buf, nil, nil), ErrNilInput)
	assert.ErrorIs(t, SurfacePlot(&buf, nil, nil), ErrNilInput)

	c, err := contour.Circle(0, 1, 20)
	require.NoError(t, err)
	small := DefaultOptions()
	small.Width = MinSize - 1
	assert.ErrorIs(t, PathPlot(&buf, c, &small), ErrBadSize)

	g, err := surface.Sample(analytic.Bind(analytic.Square, 0), 0, 1, &surface.Options{Size: 4, Span: 1})
	require.NoError(t, err)
	assert.ErrorIs(t, SurfacePlot(&buf, g, &small), ErrBadSize)
	assert.Zero(t, buf.Len())
}

func TestViridis(t *testing.T) {
	assert.Equal(t, viridis[0], Viridis(0))
	assert.Equal(t, viridis[0], Viridis(-3))
	assert.Equal(t, viridis[len(viridis)-1], Viridis(1))
	assert.Equal(t, viridis[len(viridis)-1], Viridis(7))

	// Anchors are hit exactly at multiples of 1/9.
	assert.InDelta(t, viridis[3].G, Viridis(3.0/9).G, 1e-9)

	// Green channel grows along the scale.
	prev := -1.0
	for i := 0; i <= 20; i++ {
		c := Viridis(float64(i) / 20)
		assert.GreaterOrEqual(t, c.G, prev)
		prev = c.G
	}
	assert.Equal(t, gg.Hex("#440154"), Viridis(0))
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, ticks(-1.2, 1.2, 5))
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, ticks(0, 10, 5))

	got := ticks(-2.3, 2.9, 6)
	require.NotEmpty(t, got)
	assert.GreaterOrEqual(t, got[0], -2.3)
	assert.LessOrEqual(t, got[len(got)-1], 2.9)
}

func TestFrameEqualAspect(t *testing.T) {
	fr := newFrame(complex(-1, -1), complex(3, 1), 800, 600, 40)
	x0, y0 := fr.px(0)
	x1, _ := fr.px(1)
	_, y1 := fr.px(complex(0, 1))
	assert.InDelta(t, x1-x0, y0-y1, 1e-9)
}

func TestHeightScale(t *testing.T) {
	// A pole on the grid: the cap bounds the range.
	top, h := heightScale(0.1, 1e6, 10)
	assert.Equal(t, 10.0, top)
	assert.Equal(t, 1.0, h(20))
	assert.InDelta(t, (5-0.1)/9.9, h(5), 1e-12)

	// Whole grid above the cap: the grid keeps its own relief.
	top, h = heightScale(128, 172, 10)
	assert.Equal(t, 172.0, top)
	assert.Equal(t, 0.0, h(128))
	assert.Equal(t, 1.0, h(172))
	assert.InDelta(t, 0.5, h(150), 1e-12)

	// No cap.
	top, h = heightScale(0, 50, 0)
	assert.Equal(t, 50.0, top)
	assert.Equal(t, 1.0, h(50))

	// Flat grid.
	_, h = heightScale(3, 3, 10)
	assert.Equal(t, 0.0, h(3))
}

func TestSurfacePlotAboveCapKeepsRelief(t *testing.T) {
	// |exp(z)| ranges over roughly [128, 172] here, all above ZCap.
	g, err := surface.Sample(analytic.Bind(analytic.Exponential, 0), complex(5, 5), 0.1, &surface.Options{Size: 20, Span: surface.DefaultSpan})
	require.NoError(t, err)
	lo, _ := g.Range()
	require.Greater(t, lo, 10.0)

	opts := DefaultOptions()
	opts.Width, opts.Height = 400, 400
	var buf bytes.Buffer
	require.NoError(t, SurfacePlot(&buf, g, &opts))
	img := decode(t, &buf)

	// Cells at the high end of the scale are yellow-green. Scan the plot
	// area left of the colour bar.
	limit := opts.Width - int(7*opts.FontSize)
	found := false
	for y := 0; y < opts.Height && !found; y++ {
		for x := 0; x < limit; x++ {
			r, g, b := rgb(img, float64(x), float64(y))
			if g > 180 && b < 90 && r > 90 {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "surface uses the upper end of the colour scale")
}
