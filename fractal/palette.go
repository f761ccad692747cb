package fractal

import (
	"image/color"
	"math"
)

const paletteSize = 14

var palette = func() [paletteSize]color.RGBA {
	var colours [paletteSize]color.RGBA
	tauRainbow := 2 * math.Pi / paletteSize
	tauPart := 2 * math.Pi / 3
	channel := func(depth, part int) uint8 {
		return uint8((math.Sin(tauRainbow*float64(depth)+float64(part)*tauPart)*32767 + 32768) / 257)
	}
	for i := range colours {
		colours[i] = color.RGBA{channel(i, 1), channel(i, 2), channel(i, 3), 255}
	}
	return colours
}()

// Colour picks the colour of a cell. Points that never escaped are black.
func Colour(depth, maxDepth int) color.RGBA {
	if depth >= maxDepth {
		return color.RGBA{0, 0, 0, 255}
	}
	return palette[depth%paletteSize]
}
