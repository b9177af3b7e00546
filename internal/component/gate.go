// internal/component/gate.go
package component

import "go-typeball/internal/types"

// Gate is one of the two exits of a course. Only the goal gate completes it.
type Gate struct {
	ID     types.EntityID
	Name   string
	isGoal bool
}

func NewGate(id types.EntityID, name string, isGoal bool) *Gate {
	return &Gate{ID: id, Name: name, isGoal: isGoal}
}

func (g *Gate) IsGoal() bool { return g.isGoal }

// SetGoal updates the flag and reports whether it changed.
// Repainting is left to whoever listens for the change.
func (g *Gate) SetGoal(goal bool) bool {
	if g.isGoal == goal {
		return false
	}
	g.isGoal = goal
	return true
}

// CompletesCourse reports whether a player hit on this gate finishes the course.
// The gate has no notion of rounds, so repeated hits keep returning true.
func (g *Gate) CompletesCourse() bool {
	return g.isGoal
}
