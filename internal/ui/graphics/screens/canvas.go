package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCanvas draws on an ebiten image in pixel units.
type imageCanvas struct {
	image *ebiten.Image
}

func (c imageCanvas) Clear(col color.Color) {
	c.image.Fill(col)
}

func (c imageCanvas) FillRect(x, y, w, h float32, col color.Color) {
	vector.DrawFilledRect(c.image, x, y, w, h, col, false)
}
