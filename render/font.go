// SPDX-License-Identifier: MIT

package render

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var loadFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// setFont installs Go Regular at size points on dc.
func setFont(dc *gg.Context, size float64) error {
	src, err := loadFont()
	if err != nil {
		return err
	}
	dc.SetFont(src.Face(size))
	return nil
}
