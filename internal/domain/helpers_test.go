package domain

// scriptedRand replays values in order, wrapping around.
type scriptedRand struct {
	values []int
	next   int
}

func newScriptedRand(values ...int) *scriptedRand {
	return &scriptedRand{values: values}
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func cells(cs ...[2]int) []Coord {
	result := make([]Coord, len(cs))
	for i, c := range cs {
		result[i] = Coord{c[0], c[1]}
	}
	return result
}
