package quiz

import "math/rand"

// Rand is the source of randomness the generator draws from: question
// type selection, the true/false coin flip and option shuffling. The
// default source is the shared math/rand generator, which is safe for
// concurrent use; tests and reproducible runs inject their own.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) Float64() float64                   { return rand.Float64() }
func (globalRand) IntN(n int) int                     { return rand.Intn(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

type seededRand struct{ r *rand.Rand }

func (s seededRand) Float64() float64                   { return s.r.Float64() }
func (s seededRand) IntN(n int) int                     { return s.r.Intn(n) }
func (s seededRand) Shuffle(n int, swap func(i, j int)) { s.r.Shuffle(n, swap) }

// NewSeededRand returns a deterministic Rand seeded with seed. Unlike the
// default source it is not safe for concurrent use; give each goroutine
// its own.
func NewSeededRand(seed uint64) Rand {
	return seededRand{r: rand.New(rand.NewSource(int64(seed)))}
}
