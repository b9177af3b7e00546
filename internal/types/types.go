// internal/types/types.go
package types

import "fmt"

// EntityID identifies a physics body and the component attached to it.
type EntityID uint32

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Difficulty selects word length limits and the highest course tier.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultyCount is the number of course tiers.
const DifficultyCount = int(Hard) + 1

func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a tier name from a course file to its Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, &ConfigurationError{Field: "tier", Reason: fmt.Sprintf("unknown difficulty %q", s)}
}

// ControlScheme says whether the keyboard types (Normal) or steers the ball (Switched).
type ControlScheme int

const (
	Normal ControlScheme = iota
	Switched
)

func (c ControlScheme) String() string {
	if c == Switched {
		return "switched"
	}
	return "normal"
}

