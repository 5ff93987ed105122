package simulation

import "math/rand/v2"

// Source yields uniform draws in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// seedMix spreads a single seed over both PCG state words.
const seedMix = 0x9e3779b97f4a7c15

// NewSource returns a PCG-backed generator fully determined by seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedMix))
}

// sequence replays a fixed list of draws. It panics when exhausted so a
// test that consumes more draws than it planned fails loudly.
type sequence struct {
	draws []float64
	next  int
}

// NewSequence returns a Source that yields draws in order.
func NewSequence(draws ...float64) Source {
	return &sequence{draws: draws}
}

func (s *sequence) Float64() float64 {
	if s.next >= len(s.draws) {
		panic("simulation: draw sequence exhausted")
	}
	d := s.draws[s.next]
	s.next++
	return d
}
