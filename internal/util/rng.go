package util

import "golang.org/x/exp/rand"

// Source yields uniform draws in [0,1).
type Source interface {
	Float64() float64
}

// New returns a PCG-backed generator. A zero seed is replaced by 1.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Scripted replays a fixed sequence of draws, wrapping around at the end.
type Scripted struct {
	Values []float64
	next   int
}

func (s *Scripted) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
