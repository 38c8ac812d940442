package components

import (
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/types"
)

// FieldRenderer maps grid cells to canvas squares of CellSize units.
type FieldRenderer struct {
	CellSize int
}

func NewFieldRenderer(cellSize int) *FieldRenderer {
	return &FieldRenderer{CellSize: cellSize}
}

// DrawScene paints the background, then every snake segment, then the food.
func (fr *FieldRenderer) DrawScene(canvas types.Canvas, game *domain.Game) {
	canvas.Clear(types.ColorBackground)
	fr.DrawSnake(canvas, game.Snake)
	fr.DrawFood(canvas, game.Food)
}

func (fr *FieldRenderer) DrawSnake(canvas types.Canvas, snake *domain.Snake) {
	if snake == nil {
		return
	}
	for _, cell := range snake.Body() {
		fr.fillCell(canvas, cell, types.ColorSnake)
	}
}

func (fr *FieldRenderer) DrawFood(canvas types.Canvas, food *domain.Food) {
	if food == nil {
		return
	}
	fr.fillCell(canvas, food.Pos, types.ColorFood)
}

func (fr *FieldRenderer) fillCell(canvas types.Canvas, cell domain.Coord, c color.Color) {
	size := float32(fr.CellSize)
	x := float32(cell.X * fr.CellSize)
	y := float32(cell.Y * fr.CellSize)
	canvas.FillRect(x, y, size, size, c)
}
