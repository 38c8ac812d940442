package domain

// Field is the bounded playing grid. Cells run from 0 to Width-1 and
// 0 to Height-1; there is no wrap-around.
type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width &&
		c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta())
}

func (f *Field) Cells() int {
	return f.Width * f.Height
}

// Random returns a uniformly chosen cell of the field.
func (f *Field) Random(rng Rand) Coord {
	return Coord{
		X: rng.Intn(f.Width),
		Y: rng.Intn(f.Height),
	}
}
