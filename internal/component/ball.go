// internal/component/ball.go
package component

import "go-typeball/internal/types"

// Ball is the player body.
type Ball struct {
	ID     types.EntityID
	Radius float64
	Spawn  types.Vec2
}
