package random

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/trebuchet-org/courier/internal/usecase"
)

// Source draws uniform amounts and delays. It is safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a Source seeded from the runtime's entropy
func NewSource() *Source {
	return &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded creates a deterministic Source
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64Between returns a value in [min, max]. Reversed bounds are swapped.
func (s *Source) Float64Between(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Float64()*(max-min)
}

// DurationBetween returns a duration in [min, max]. Reversed bounds are swapped.
func (s *Source) DurationBetween(min, max time.Duration) time.Duration {
	if max < min {
		min, max = max, min
	}
	if max == min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + time.Duration(s.rng.Int64N(int64(max-min)+1))
}

var _ usecase.Randomizer = (*Source)(nil)
