// internal/term/viewport.go
package term

import (
	"math"

	"go-typeball/internal/defs"
	"go-typeball/internal/types"
)

// Viewport maps the world rectangle onto a block of terminal cells.
type Viewport struct {
	X, Y       int // top-left cell
	Cols, Rows int
	World      types.Vec2
}

func (v Viewport) cellW() float64 { return v.World.X / float64(v.Cols) }
func (v Viewport) cellH() float64 { return v.World.Y / float64(v.Rows) }

// ToCell returns the cell holding world point p.
func (v Viewport) ToCell(p types.Vec2) (int, int) {
	col := int(math.Floor(p.X / v.cellW()))
	row := int(math.Floor(p.Y / v.cellH()))
	col = max(0, min(v.Cols-1, col))
	row = max(0, min(v.Rows-1, row))
	return v.X + col, v.Y + row
}

// ToWorld returns the world point at the centre of a cell.
func (v Viewport) ToWorld(x, y int) types.Vec2 {
	return types.Vec2{
		X: (float64(x-v.X) + 0.5) * v.cellW(),
		Y: (float64(y-v.Y) + 0.5) * v.cellH(),
	}
}

// Contains reports whether the cell is inside the viewport.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Cols && y >= v.Y && y < v.Y+v.Rows
}

// Covers reports whether a cell's centre lies inside r.
func (v Viewport) Covers(x, y int, r defs.Rect) bool {
	p := v.ToWorld(x, y)
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
