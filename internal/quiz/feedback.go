package quiz

import (
	"math/rand/v2"
	"time"
)

// RandSource yields floats in [0,1). Production code uses NewRandSource;
// tests inject fixed values.
type RandSource interface {
	Float64() float64
}

// NewRandSource returns a PCG-backed source. A zero seed is replaced with
// the current time so each run differs.
func NewRandSource(seed uint64) RandSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FixedSource always returns the same sample.
type FixedSource float64

func (f FixedSource) Float64() float64 { return float64(f) }

// SequenceSource replays samples in order, repeating the last one.
type SequenceSource struct {
	Samples []float64
	next    int
}

func (s *SequenceSource) Float64() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	v := s.Samples[s.next]
	if s.next < len(s.Samples)-1 {
		s.next++
	}
	return v
}

// PickFeedback selects pool[floor(r*n)]. The index is clamped to the
// pool bounds so r == 1.0 or a negative sample still lands on an entry.
func PickFeedback(pool []string, r float64) string {
	n := len(pool)
	if n == 0 {
		return ""
	}
	i := int(r * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return pool[i]
}
