// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go-typeball/internal/config"
	"go-typeball/internal/types"
)

// LoadCourseLibraryFile reads and validates a course file from disk.
func LoadCourseLibraryFile(path string) (*CourseLibrary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open course definitions file: %w", err)
	}
	defer file.Close()
	return LoadCourseLibrary(file)
}

// LoadCourseLibrary decodes and validates course definitions.
func LoadCourseLibrary(r io.Reader) (*CourseLibrary, error) {
	var lib CourseLibrary
	if err := json.NewDecoder(r).Decode(&lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal course definitions: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// Validate checks tiers, ids, sizes, the single-goal rule and that every
// spawn leaves the ball clear of all static bodies.
func (l *CourseLibrary) Validate() error {
	goals := 0
	for i, g := range l.Gates {
		if g.Bounds.Empty() {
			return &types.ConfigurationError{Field: fmt.Sprintf("gates[%d]", i), Reason: "empty bounds"}
		}
		if g.Goal {
			goals++
		}
	}
	if goals != 1 {
		return &types.ConfigurationError{Field: "gates", Reason: fmt.Sprintf("exactly one goal gate required, got %d", goals)}
	}

	for i, wall := range l.Walls {
		if wall.Empty() {
			return &types.ConfigurationError{Field: fmt.Sprintf("walls[%d]", i), Reason: "empty bounds"}
		}
	}

	seen := make(map[string]bool, len(l.Courses))
	for _, c := range l.Courses {
		if c.ID == "" {
			return &types.ConfigurationError{Field: "courses", Reason: "course without id"}
		}
		if seen[c.ID] {
			return &types.ConfigurationError{Field: "courses", Reason: fmt.Sprintf("duplicate course id %q", c.ID)}
		}
		seen[c.ID] = true
		if _, err := types.ParseDifficulty(c.Tier); err != nil {
			return fmt.Errorf("course %q: %w", c.ID, err)
		}
		for j, o := range c.Obstacles {
			if o.Empty() {
				return &types.ConfigurationError{Field: fmt.Sprintf("courses[%s].obstacles[%d]", c.ID, j), Reason: "empty bounds"}
			}
		}
		if err := l.checkSpawn(c); err != nil {
			return err
		}
	}
	return nil
}

func (l *CourseLibrary) checkSpawn(c CourseDefinition) error {
	blocked := func(what string) error {
		return &types.ConfigurationError{
			Field:  fmt.Sprintf("courses[%s].spawn", c.ID),
			Reason: fmt.Sprintf("ball at (%g, %g) overlaps %s", c.Spawn.X, c.Spawn.Y, what),
		}
	}
	for _, g := range l.Gates {
		if g.Bounds.TouchesCircle(c.Spawn, config.BallRadius) {
			return blocked("gate " + g.Name)
		}
	}
	for i, wall := range l.Walls {
		if wall.TouchesCircle(c.Spawn, config.BallRadius) {
			return blocked(fmt.Sprintf("walls[%d]", i))
		}
	}
	for j, o := range c.Obstacles {
		if o.TouchesCircle(c.Spawn, config.BallRadius) {
			return blocked(fmt.Sprintf("obstacles[%d]", j))
		}
	}
	return nil
}
