package types

import "image/color"

var (
	ColorBackground    = color.RGBA{51, 51, 51, 255}
	ColorSnake         = color.RGBA{255, 0, 0, 255}
	ColorFood          = color.RGBA{255, 255, 0, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
