// internal/system/movement.go
package system

import (
	"go-typeball/internal/entity"
	"go-typeball/internal/interfaces"
	"go-typeball/internal/types"
)

// MovementSystem steers the ball from the two input axes.
type MovementSystem struct {
	ecs   *entity.ECS
	world interfaces.Mover
	speed float64
}

func NewMovementSystem(ecs *entity.ECS, world interfaces.Mover, speed float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, world: world, speed: speed}
}

// Update schedules the ball to move by direction * speed * deltaTime.
func (s *MovementSystem) Update(direction types.Vec2, deltaTime float64) {
	if s.ecs.Ball == nil || (direction.X == 0 && direction.Y == 0) {
		return
	}
	pos, ok := s.world.Position(s.ecs.Ball.ID)
	if !ok {
		return
	}
	s.world.MovePosition(s.ecs.Ball.ID, pos.Add(direction.Scale(s.speed*deltaTime)))
}
