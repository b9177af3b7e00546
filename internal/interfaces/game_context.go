// internal/interfaces/game_context.go
package interfaces

import (
	"go-typeball/internal/physics"
	"go-typeball/internal/types"
)

// GameContext is the part of the orchestrator that systems read.
type GameContext interface {
	InPlay() bool
	CourseComplete() bool
	Controls() types.ControlScheme
}

// Mover is the part of the physics world systems drive.
type Mover interface {
	Position(id types.EntityID) (types.Vec2, bool)
	MovePosition(id types.EntityID, target types.Vec2)
	BodyAt(p types.Vec2) (*physics.Body, bool)
}
