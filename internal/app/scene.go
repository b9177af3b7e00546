// internal/app/scene.go
package app

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"go-typeball/internal/component"
	"go-typeball/internal/config"
	"go-typeball/internal/defs"
	"go-typeball/internal/progress"
	"go-typeball/internal/types"
)

// State is a read-only snapshot for frontends and tests.
type State struct {
	Phase           component.Phase
	Round           int
	Score           int
	Difficulty      types.Difficulty
	Controls        types.ControlScheme
	KeyboardVisible bool
	CourseID        string
	Progress        progress.Round
	Markup          string
}

// GateView is a gate as drawn.
type GateView struct {
	ID     types.EntityID
	Name   string
	Bounds defs.Rect
	IsGoal bool
}

// ObstacleView is an obstacle or wall as drawn.
type ObstacleView struct {
	Bounds defs.Rect
	Wall   bool
}

// Scene is everything in the world that a frontend draws.
type Scene struct {
	Size      types.Vec2
	Ball      types.Vec2
	Radius    float64
	Dragging  bool
	Gates     []GateView
	Obstacles []ObstacleView
}

// State returns the current snapshot.
func (g *Game) State() State {
	return State{
		Phase:           g.phase,
		Round:           g.round,
		Score:           g.score,
		Difficulty:      g.StateSystem.Difficulty(),
		Controls:        g.StateSystem.Controls(),
		KeyboardVisible: g.StateSystem.KeyboardVisible(),
		CourseID:        g.course.ID,
		Progress:        g.tracker.Round(),
		Markup:          g.tracker.Markup(),
	}
}

func (g *Game) Score() int                   { return g.score }
func (g *Game) Markup() string               { return g.tracker.Markup() }
func (g *Game) Difficulty() types.Difficulty { return g.StateSystem.Difficulty() }
func (g *Game) KeyboardVisible() bool        { return g.StateSystem.KeyboardVisible() }
func (g *Game) Course() defs.CourseDefinition {
	return g.course
}

// GoalGate is the gate that currently completes the course.
func (g *Game) GoalGate() *component.Gate { return g.gates.Goal() }

// GateFlips counts goal swaps since the game started.
func (g *Game) GateFlips() int { return g.gates.Flips() }

// BallPosition is the ball's committed position.
func (g *Game) BallPosition() types.Vec2 {
	p, _ := g.World.Position(g.ECS.Ball.ID)
	return p
}

// Scene collects the drawable world. Obstacles are ordered by entity id so
// frames draw in a stable order.
func (g *Game) Scene() Scene {
	sc := Scene{
		Size:     g.World.Size(),
		Ball:     g.BallPosition(),
		Radius:   g.ECS.Ball.Radius,
		Dragging: g.DragSystem.Dragging(),
	}
	for _, gate := range g.gates.Gates() {
		body, ok := g.World.Body(gate.ID)
		if !ok {
			continue
		}
		sc.Gates = append(sc.Gates, GateView{ID: gate.ID, Name: gate.Name, Bounds: body.Bounds, IsGoal: gate.IsGoal()})
	}

	ids := make([]types.EntityID, 0, len(g.ECS.Obstacles))
	for id := range g.ECS.Obstacles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		o := g.ECS.Obstacles[id]
		sc.Obstacles = append(sc.Obstacles, ObstacleView{Bounds: o.Bounds, Wall: o.Wall})
	}
	return sc
}

// PaletteFrom turns validated colour settings into the word palette.
// Invalid entries fall back to the default colours.
func PaletteFrom(c config.Colors) progress.Palette {
	p := progress.DefaultPalette()
	if col, err := colorful.Hex(c.Completed); err == nil {
		p.Completed = col
	}
	if col, err := colorful.Hex(c.Remaining); err == nil {
		p.Remaining = col
	}
	if col, err := colorful.Hex(c.Finished); err == nil {
		p.Finished = col
	}
	return p
}
