// internal/entity/ecs.go
package entity

import (
	"go-typeball/internal/component"
	"go-typeball/internal/types"
)

// ECS maps entity ids to the components that react to physics contacts.
type ECS struct {
	NextID    types.EntityID
	Ball      *component.Ball
	Gates     map[types.EntityID]*component.Gate
	Obstacles map[types.EntityID]*component.Obstacle
}

func NewECS() *ECS {
	return &ECS{
		NextID:    1,
		Gates:     make(map[types.EntityID]*component.Gate),
		Obstacles: make(map[types.EntityID]*component.Obstacle),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// ClearCourseObstacles forgets the obstacles of the current course and
// returns their ids. Shared walls are kept.
func (ecs *ECS) ClearCourseObstacles() []types.EntityID {
	var removed []types.EntityID
	for id, o := range ecs.Obstacles {
		if o.Wall {
			continue
		}
		removed = append(removed, id)
		delete(ecs.Obstacles, id)
	}
	return removed
}
