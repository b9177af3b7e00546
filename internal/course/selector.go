// internal/course/selector.go
package course

import (
	"fmt"

	"go-typeball/internal/defs"
	"go-typeball/internal/types"
)

// Rand is satisfied by *utils.PRNGService.
type Rand interface {
	Intn(n int) int
}

// Selector picks obstacle layouts for a difficulty.
type Selector struct {
	tiers [types.DifficultyCount][]defs.CourseDefinition
	rng   Rand
}

func NewSelector(lib *defs.CourseLibrary, rng Rand) *Selector {
	return &Selector{tiers: lib.ByTier(), rng: rng}
}

// Select samples a tier uniformly from [0, d], then a layout within it.
// An empty sampled tier is retried among the non-empty tiers up to d.
func (s *Selector) Select(d types.Difficulty) (defs.CourseDefinition, error) {
	if !d.Valid() {
		return defs.CourseDefinition{}, fmt.Errorf("select course: %w",
			&types.ConfigurationError{Field: "difficulty", Reason: fmt.Sprintf("tier %d out of range", int(d))})
	}

	tier := s.rng.Intn(int(d) + 1)
	if len(s.tiers[tier]) == 0 {
		nonEmpty := make([]int, 0, int(d)+1)
		for t := 0; t <= int(d); t++ {
			if len(s.tiers[t]) > 0 {
				nonEmpty = append(nonEmpty, t)
			}
		}
		if len(nonEmpty) == 0 {
			return defs.CourseDefinition{}, &types.ContentExhaustedError{Source: "courses", Filter: "tier <= " + d.String()}
		}
		tier = nonEmpty[s.rng.Intn(len(nonEmpty))]
	}

	layouts := s.tiers[tier]
	return layouts[s.rng.Intn(len(layouts))], nil
}

