// internal/component/obstacle.go
package component

import (
	"go-typeball/internal/defs"
	"go-typeball/internal/types"
)

// Obstacle fails the course on contact.
type Obstacle struct {
	ID     types.EntityID
	Bounds defs.Rect
	Wall   bool // shared wall rather than part of the current course
}
