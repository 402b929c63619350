// SPDX-License-Identifier: MIT

package render

import (
	"io"

	"github.com/gogpu/gg"
)

var (
	background = gg.White
	ink        = gg.Hex("222222")
	gridInk    = gg.Hex("E5E5E5")
	pathInk    = gg.Hex("1F77B4")
	centerInk  = gg.Hex("D62728")
	markerInk  = gg.Hex("2CA02C")
)

// canvas wraps a gg.Context and keeps the first rasterization error so the
// drawing code reads straight through.
type canvas struct {
	dc  *gg.Context
	err error
}

func newCanvas(o Options) (*canvas, error) {
	dc := gg.NewContext(o.Width, o.Height)
	if err := setFont(dc, o.FontSize); err != nil {
		_ = dc.Close()
		return nil, err
	}
	dc.ClearWithColor(background)
	return &canvas{dc: dc}, nil
}

func (c *canvas) color(col gg.RGBA) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
}

// fill fills the current path with col. gg shares one brush between fill
// and stroke, so the colour is set right before every operation.
func (c *canvas) fill(col gg.RGBA) {
	c.color(col)
	if err := c.dc.Fill(); err != nil && c.err == nil {
		c.err = err
	}
}

func (c *canvas) stroke(col gg.RGBA, width float64) {
	c.color(col)
	c.dc.SetLineWidth(width)
	if err := c.dc.Stroke(); err != nil && c.err == nil {
		c.err = err
	}
}

func (c *canvas) line(x1, y1, x2, y2 float64, col gg.RGBA, width float64) {
	c.dc.DrawLine(x1, y1, x2, y2)
	c.stroke(col, width)
}

func (c *canvas) text(s string, x, y, ax, ay float64, col gg.RGBA) {
	c.color(col)
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// finish encodes the image as PNG into w and releases the context.
func (c *canvas) finish(w io.Writer) error {
	defer c.dc.Close()
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}
