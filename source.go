package typerand

import "math/rand"

// Source abstracts the pseudo-random integer stream feeding generation. A
// Source is consumed from a single goroutine; give each concurrent caller its
// own Generator (and therefore its own Source).
type Source interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewSource returns the default Source, a math/rand generator with the given
// seed. The same seed always replays the same descriptor sequence, which is
// what lets a harness reproduce a failing run.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
