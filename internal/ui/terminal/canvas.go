package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// CellWidth is the number of terminal columns per grid cell; two columns
// make a cell roughly square in most fonts.
const CellWidth = 2

// Canvas draws on a tcell screen. One unit is one grid cell.
type Canvas struct {
	screen tcell.Screen
}

func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen}
}

func (c *Canvas) Clear(col color.Color) {
	c.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(col)))
}

func (c *Canvas) FillRect(x, y, w, h float32, col color.Color) {
	style := tcell.StyleDefault.Background(toTcell(col))
	width, height := c.screen.Size()

	x0, y0 := int(x)*CellWidth, int(y)
	x1, y1 := int(x+w)*CellWidth, int(y+h)
	for row := max(y0, 0); row < min(y1, height); row++ {
		for column := max(x0, 0); column < min(x1, width); column++ {
			c.screen.SetContent(column, row, ' ', nil, style)
		}
	}
}

// DrawText writes s starting at column x of row y.
func (c *Canvas) DrawText(x, y int, s string, col color.Color) {
	style := tcell.StyleDefault.Foreground(toTcell(col))
	for i, r := range []rune(s) {
		c.screen.SetContent(x+i, y, r, nil, style)
	}
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
