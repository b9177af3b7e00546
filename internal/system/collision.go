// internal/system/collision.go
package system

import (
	"go-typeball/internal/entity"
	"go-typeball/internal/event"
	"go-typeball/internal/interfaces"
	"go-typeball/internal/physics"
)

// CollisionSystem turns physics contacts into course events.
type CollisionSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, gameContext: gameContext, eventDispatcher: eventDispatcher}
}

// OnContact is the physics.ContactHandler.
func (s *CollisionSystem) OnContact(mover, other *physics.Body) {
	if mover.Tag != physics.TagPlayer || !s.gameContext.InPlay() {
		return
	}

	if gate, ok := s.ecs.Gates[other.ID]; ok {
		if gate.CompletesCourse() {
			s.eventDispatcher.Emit(event.CompleteCourse, event.CoursePayload{GateID: gate.ID})
		}
		return
	}

	if _, ok := s.ecs.Obstacles[other.ID]; ok {
		// once the goal is reached the ball may rest against anything
		if s.gameContext.CourseComplete() {
			return
		}
		s.eventDispatcher.Emit(event.FailCourse, event.FailPayload{Reason: "obstacle"})
	}
}
