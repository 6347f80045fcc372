package ebitenhost

import (
	"image/color"

	"github.com/hubastard/canopy/engine/colors"
)

// colorRGBA converts to the premultiplied 8-bit form ebiten fills with.
func colorRGBA(c colors.Color) color.RGBA {
	p := c.Premultiplied()
	to8 := func(v float32) uint8 { return uint8(v*255 + 0.5) }
	return color.RGBA{R: to8(p[0]), G: to8(p[1]), B: to8(p[2]), A: to8(p[3])}
}
