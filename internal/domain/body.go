package domain

const minBodyCapacity = 8

// Body is the snake's cell sequence, head first, stored in a ring buffer
// so that pushing a new head and dropping the tail are both O(1).
// A Body always holds at least one cell.
type Body struct {
	cells []Coord
	head  int
	size  int
}

func NewBody(head Coord, rest ...Coord) *Body {
	capacity := minBodyCapacity
	for capacity < len(rest)+1 {
		capacity *= 2
	}

	b := &Body{cells: make([]Coord, capacity)}
	b.cells[0] = head
	b.size = 1
	for _, c := range rest {
		b.PushBack(c)
	}
	return b
}

func (b *Body) Len() int {
	return b.size
}

func (b *Body) Head() Coord {
	return b.cells[b.head]
}

func (b *Body) Tail() Coord {
	return b.At(b.size - 1)
}

// At returns the i-th cell counted from the head.
func (b *Body) At(i int) Coord {
	return b.cells[(b.head+i)%len(b.cells)]
}

func (b *Body) PushFront(c Coord) {
	b.grow()
	b.head = (b.head - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.head] = c
	b.size++
}

func (b *Body) PushBack(c Coord) {
	b.grow()
	b.cells[(b.head+b.size)%len(b.cells)] = c
	b.size++
}

// PopBack removes the tail. The last remaining cell is never removed.
func (b *Body) PopBack() (Coord, bool) {
	if b.size <= 1 {
		return Coord{}, false
	}
	tail := b.Tail()
	b.size--
	return tail, true
}

func (b *Body) Contains(c Coord) bool {
	return b.indexFrom(0, c) >= 0
}

// ContainsBehindHead reports whether c is any cell except the head.
func (b *Body) ContainsBehindHead(c Coord) bool {
	return b.indexFrom(1, c) >= 0
}

func (b *Body) Cells() []Coord {
	result := make([]Coord, b.size)
	for i := range result {
		result[i] = b.At(i)
	}
	return result
}

func (b *Body) indexFrom(start int, c Coord) int {
	for i := start; i < b.size; i++ {
		if b.At(i) == c {
			return i
		}
	}
	return -1
}

func (b *Body) grow() {
	if b.size < len(b.cells) {
		return
	}
	cells := make([]Coord, len(b.cells)*2)
	for i := 0; i < b.size; i++ {
		cells[i] = b.At(i)
	}
	b.cells = cells
	b.head = 0
}
