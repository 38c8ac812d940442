package domain

type Food struct {
	Pos Coord
}

func NewFood(pos Coord) *Food {
	return &Food{Pos: pos}
}

// Place moves the food to a random free cell by rejection sampling.
// It returns false, leaving the food untouched, when the snake covers the
// whole field.
func (f *Food) Place(field *Field, snake *Snake, rng Rand) bool {
	if snake.occupiedCells(field) >= field.Cells() {
		return false
	}

	for {
		pos := field.Random(rng)
		if !snake.Occupies(pos) {
			f.Pos = pos
			return true
		}
	}
}
