// internal/defs/courses.go
package defs

import "go-typeball/internal/types"

// CourseDefinition is one obstacle layout.
type CourseDefinition struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Tier      string     `json:"tier"` // "easy", "medium" or "hard"
	Spawn     types.Vec2 `json:"spawn"`
	Obstacles []Rect     `json:"obstacles"`
}

// GateDefinition places one of the two gates. Gates do not move between courses.
type GateDefinition struct {
	Name   string `json:"name"`
	Bounds Rect   `json:"bounds"`
	Goal   bool   `json:"goal"` // goal on the first round
}

// CourseLibrary is the content of a course file.
type CourseLibrary struct {
	Gates   [2]GateDefinition  `json:"gates"`
	Walls   []Rect             `json:"walls"` // present in every course
	Courses []CourseDefinition `json:"courses"`
}

// ByTier groups courses by difficulty tier; index is types.Difficulty.
func (l *CourseLibrary) ByTier() [types.DifficultyCount][]CourseDefinition {
	var tiers [types.DifficultyCount][]CourseDefinition
	for _, c := range l.Courses {
		d, err := types.ParseDifficulty(c.Tier)
		if err != nil {
			continue
		}
		tiers[d] = append(tiers[d], c)
	}
	return tiers
}
