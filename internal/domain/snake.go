package domain

// Start position of a fresh or revived snake: head at (1,0), tail at
// (0,0), heading right.
var (
	StartHead      = Coord{1, 0}
	StartTail      = Coord{0, 0}
	StartDirection = DirectionRight
)

type Snake struct {
	body *Body

	// Heading is the direction applied on the last move; Pending is the
	// direction the next move will use.
	Heading Direction
	Pending Direction
	Alive   bool
}

func NewSnake(head Coord, rest ...Coord) *Snake {
	return &Snake{
		body:    NewBody(head, rest...),
		Heading: StartDirection,
		Pending: StartDirection,
		Alive:   true,
	}
}

func NewStartSnake() *Snake {
	return NewSnake(StartHead, StartTail)
}

func (s *Snake) Head() Coord {
	return s.body.Head()
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a copy of the cells, head first.
func (s *Snake) Body() []Coord {
	return s.body.Cells()
}

func (s *Snake) Occupies(c Coord) bool {
	return s.body.Contains(c)
}

// Steer sets the pending direction. A direction opposite to the current
// heading is rejected, so the snake can not turn back into its neck no
// matter how many keys arrive between two moves.
func (s *Snake) Steer(dir Direction) bool {
	if !dir.Valid() || dir.IsOpposite(s.Heading) {
		return false
	}
	s.Pending = dir
	return true
}

// Update moves the snake one cell. Eating the food grows the snake and
// places new food right away; afterwards the wall and self checks run
// regardless of whether food was eaten.
func (s *Snake) Update(field *Field, food *Food, rng Rand) *TickResult {
	result := &TickResult{Moved: true}

	s.Heading = s.Pending
	newHead := field.Move(s.body.Head(), s.Heading)
	s.body.PushFront(newHead)

	if newHead == food.Pos {
		result.Ate = true
		result.FoodPlaced = food.Place(field, s, rng)
	} else {
		s.body.PopBack()
	}

	if !field.Contains(newHead) {
		s.Alive = false
		result.Cause = CauseWall
	}
	if s.body.ContainsBehindHead(newHead) {
		s.Alive = false
		if result.Cause == CauseNone {
			result.Cause = CauseSelf
		}
	}

	result.Died = !s.Alive
	result.Head = newHead
	result.Food = food.Pos
	return result
}

func (s *Snake) Revive() {
	s.body = NewBody(StartHead, StartTail)
	s.Heading = StartDirection
	s.Pending = StartDirection
	s.Alive = true
}

// occupiedCells counts distinct body cells inside the field.
func (s *Snake) occupiedCells(field *Field) int {
	seen := make(map[Coord]bool, s.body.Len())
	for i := 0; i < s.body.Len(); i++ {
		c := s.body.At(i)
		if field.Contains(c) {
			seen[c] = true
		}
	}
	return len(seen)
}
