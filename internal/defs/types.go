// internal/defs/types.go
package defs

import (
	"math"

	"go-typeball/internal/types"
)

// Rect is an axis-aligned box in world units, X/Y being the top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Center returns the middle of the box.
func (r Rect) Center() types.Vec2 {
	return types.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports a box with no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// TouchesCircle reports whether a circle strictly overlaps the box.
func (r Rect) TouchesCircle(c types.Vec2, radius float64) bool {
	nx := math.Max(r.X, math.Min(c.X, r.X+r.W))
	ny := math.Max(r.Y, math.Min(c.Y, r.Y+r.H))
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy < radius*radius
}
