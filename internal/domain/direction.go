package domain

type Direction int

const (
	DirectionUp Direction = iota + 1
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Lookup tables indexed by Direction; index 0 is the zero value.
var (
	directionDeltas    = [...]Coord{{}, {0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	directionOpposites = [...]Direction{0, DirectionDown, DirectionUp, DirectionRight, DirectionLeft}
	directionNames     = [...]string{"none", "up", "down", "left", "right"}
)

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

// Opposite returns the reverse direction, or the zero Direction for an
// invalid one.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return 0
	}
	return directionOpposites[d]
}

// Delta is the one-cell step in this direction. Screen y grows downwards.
func (d Direction) Delta() Coord {
	if !d.Valid() {
		return Coord{}
	}
	return directionDeltas[d]
}

func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && d.Opposite() == other
}

func (d Direction) String() string {
	if !d.Valid() {
		return directionNames[0]
	}
	return directionNames[d]
}
