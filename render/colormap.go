// SPDX-License-Identifier: MIT

package render

import (
	"math"

	"github.com/gogpu/gg"
)

// viridis anchors, evenly spaced on [0, 1].
var viridis = []gg.RGBA{
	gg.Hex("440154"), gg.Hex("482878"), gg.Hex("3E4A89"), gg.Hex("31688E"), gg.Hex("26828E"),
	gg.Hex("1F9E89"), gg.Hex("35B779"), gg.Hex("6DCD59"), gg.Hex("B4DE2C"), gg.Hex("FDE725"),
}

// Viridis maps t ∈ [0, 1] onto the viridis scale. t is clamped.
func Viridis(t float64) gg.RGBA {
	if math.IsNaN(t) || t <= 0 {
		return viridis[0]
	}
	if t >= 1 {
		return viridis[len(viridis)-1]
	}
	pos := t * float64(len(viridis)-1)
	i := int(pos)
	return viridis[i].Lerp(viridis[i+1], pos-float64(i))
}
