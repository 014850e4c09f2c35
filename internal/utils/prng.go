// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps math/rand so the whole game can run from one seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Derive returns an independent stream keyed by (seed, key). The same key
// always yields the same stream, regardless of how much the parent was used.
func (s *PRNGService) Derive(key int) *PRNGService {
	derived := int64(Hash2(uint32(s.seed)^uint32(s.seed>>32), int32(key), 0x6d696e65))
	if derived == 0 {
		derived = 1
	}
	return &PRNGService{seed: derived, rng: rand.New(rand.NewSource(derived))}
}

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Uniform returns a number in [lo, hi).
func (s *PRNGService) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// ChooseWeighted picks an index with probability proportional to its weight.
// Non-positive weights are never picked; if nothing is positive it returns 0.
func (s *PRNGService) ChooseWeighted(weights []float64) int {
	if len(weights) == 0 {
		return 0
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	r := s.rng.Float64() * total
	upto := 0.0
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > r {
			return i
		}
		upto += w
		last = i
	}

	// float rounding can leave r == total
	return last
}
