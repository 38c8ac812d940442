package domain

import "strconv"

// Coord is a grid cell. It is comparable, so cells are checked with ==.
type Coord struct {
	X int
	Y int
}

func (c Coord) Add(delta Coord) Coord {
	return Coord{X: c.X + delta.X, Y: c.Y + delta.Y}
}

func (c Coord) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}
