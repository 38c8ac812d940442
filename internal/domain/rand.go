package domain

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the random source used for food placement. Tests pass a
// scripted implementation; the game uses a seeded x/exp/rand generator.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a generator seeded with seed, or with the current time
// when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
