// internal/system/drag.go
package system

import (
	"go-typeball/internal/entity"
	"go-typeball/internal/interfaces"
	"go-typeball/internal/physics"
	"go-typeball/internal/types"
)

// DragSystem lets the pointer pick up the ball and drag it around while
// the Normal scheme is active.
type DragSystem struct {
	ecs         *entity.ECS
	world       interfaces.Mover
	gameContext interfaces.GameContext

	selected bool
	offset   types.Vec2
}

func NewDragSystem(ecs *entity.ECS, world interfaces.Mover, gameContext interfaces.GameContext) *DragSystem {
	return &DragSystem{ecs: ecs, world: world, gameContext: gameContext}
}

func (s *DragSystem) enabled() bool {
	return s.gameContext.InPlay() &&
		!s.gameContext.CourseComplete() &&
		s.gameContext.Controls() == types.Normal
}

// Press selects the ball if the pointer is on it.
func (s *DragSystem) Press(p types.Vec2) bool {
	if !s.enabled() || s.ecs.Ball == nil {
		return false
	}
	body, ok := s.world.BodyAt(p)
	if !ok || body.Tag != physics.TagPlayer {
		return false
	}
	s.selected = true
	s.offset = body.Position.Sub(p)
	return true
}

// Drag moves the selected ball so that it keeps its offset to the pointer.
func (s *DragSystem) Drag(p types.Vec2) {
	if !s.selected {
		return
	}
	if !s.enabled() {
		s.selected = false
		return
	}
	s.world.MovePosition(s.ecs.Ball.ID, p.Add(s.offset))
}

// Release drops the ball.
func (s *DragSystem) Release() {
	s.selected = false
}

// Dragging reports whether the ball is held.
func (s *DragSystem) Dragging() bool { return s.selected }
