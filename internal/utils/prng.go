// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps math/rand so that every random decision in a game
// (word draws, course tiers, control rolls) comes from one seeded source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns an int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Bernoulli returns true with probability p.
// p <= 0 is never true and p >= 1 is always true, without consuming randomness.
func (s *PRNGService) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64() < p
}
