// Package physics is a small kinematic 2D world: a circular player body,
// static boxes, fixed-step movement and collision-enter notifications.
// It does no dynamics; bodies go where MovePosition puts them.
package physics

import (
	"math"
	"sort"

	"go-typeball/internal/defs"
	"go-typeball/internal/types"
)

// Tag identifies what a body is, like a Unity collider tag.
type Tag string

const (
	TagPlayer   Tag = "Player"
	TagGate     Tag = "Gate"
	TagObstacle Tag = "Obstacle"
)

// maxStepsPerUpdate caps catch-up after a long frame.
const maxStepsPerUpdate = 8

// Body is a circle (Radius > 0) or a box (Bounds).
type Body struct {
	ID       types.EntityID
	Tag      Tag
	Position types.Vec2 // circle centre; box centre for static bodies
	Radius   float64
	Bounds   defs.Rect
	Static   bool
}

// ContactHandler is called once when a moving body starts touching another body.
type ContactHandler func(mover, other *Body)

type pair struct{ a, b types.EntityID }

// World owns all bodies.
type World struct {
	size     types.Vec2
	step     float64
	acc      float64
	bodies   map[types.EntityID]*Body
	pending  map[types.EntityID]types.Vec2
	touching map[pair]bool
	handler  ContactHandler
}

// NewWorld creates a world of the given size in world units, stepping every step seconds.
func NewWorld(size types.Vec2, step float64) *World {
	return &World{
		size:     size,
		step:     step,
		bodies:   make(map[types.EntityID]*Body),
		pending:  make(map[types.EntityID]types.Vec2),
		touching: make(map[pair]bool),
	}
}

// OnContact sets the collision-enter handler.
func (w *World) OnContact(h ContactHandler) { w.handler = h }

// Size is the world rectangle size.
func (w *World) Size() types.Vec2 { return w.size }

// AddCircle adds a moving circular body.
func (w *World) AddCircle(id types.EntityID, tag Tag, center types.Vec2, radius float64) *Body {
	b := &Body{ID: id, Tag: tag, Position: w.clamp(center, radius), Radius: radius}
	w.bodies[id] = b
	return b
}

// AddBox adds a static box.
func (w *World) AddBox(id types.EntityID, tag Tag, bounds defs.Rect) *Body {
	b := &Body{ID: id, Tag: tag, Position: bounds.Center(), Bounds: bounds, Static: true}
	w.bodies[id] = b
	return b
}

// Remove deletes a body and forgets its contacts.
func (w *World) Remove(id types.EntityID) {
	delete(w.bodies, id)
	delete(w.pending, id)
	for p := range w.touching {
		if p.a == id || p.b == id {
			delete(w.touching, p)
		}
	}
}

// Body returns a body by id.
func (w *World) Body(id types.EntityID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Position returns a body's position.
func (w *World) Position(id types.EntityID) (types.Vec2, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return types.Vec2{}, false
	}
	return b.Position, true
}

// MovePosition schedules a moving body to travel to target on the next fixed
// step. The body stops short at the first static body it starts touching on
// the way. A later call in the same step replaces the earlier target.
func (w *World) MovePosition(id types.EntityID, target types.Vec2) {
	if b, ok := w.bodies[id]; ok && !b.Static {
		w.pending[id] = target
	}
}

// Teleport places a body immediately and drops its contacts, so touching
// something at the new place counts as a fresh contact.
func (w *World) Teleport(id types.EntityID, pos types.Vec2) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	delete(w.pending, id)
	b.Position = w.clamp(pos, b.Radius)
	for p := range w.touching {
		if p.a == id {
			delete(w.touching, p)
		}
	}
}

// Pending reports the scheduled target of a body, if any.
func (w *World) Pending(id types.EntityID) (types.Vec2, bool) {
	t, ok := w.pending[id]
	return t, ok
}

// BodyAt returns the moving body whose circle contains p.
func (w *World) BodyAt(p types.Vec2) (*Body, bool) {
	for _, b := range w.sorted() {
		if b.Static {
			continue
		}
		d := p.Sub(b.Position)
		if d.X*d.X+d.Y*d.Y <= b.Radius*b.Radius {
			return b, true
		}
	}
	return nil, false
}

// Step advances the world by dt using fixed steps and returns how many ran.
func (w *World) Step(dt float64) int {
	w.acc += dt
	steps := 0
	for w.acc >= w.step && steps < maxStepsPerUpdate {
		w.acc -= w.step
		w.fixedStep()
		steps++
	}
	if steps == maxStepsPerUpdate {
		w.acc = 0
	}
	return steps
}

func (w *World) fixedStep() {
	bodies := w.sorted()
	var entered [][2]*Body
	for _, mover := range bodies {
		if mover.Static {
			continue
		}
		target, ok := w.pending[mover.ID]
		if !ok {
			target = mover.Position
		}
		delete(w.pending, mover.ID)
		entered = append(entered, w.sweep(mover, w.clamp(target, mover.Radius), bodies)...)
	}

	if w.handler == nil {
		return
	}
	for _, c := range entered {
		w.handler(c[0], c[1])
	}
}

// sweep walks a circle towards target in increments of at most half its
// radius and stops where it first starts touching a static body, so a
// long move cannot pass through a thin box.
func (w *World) sweep(mover *Body, target types.Vec2, bodies []*Body) [][2]*Body {
	from := mover.Position
	d := target.Sub(from)
	n := 1
	if mover.Radius > 0 {
		n = max(1, int(math.Ceil(math.Hypot(d.X, d.Y)/(mover.Radius/2))))
	}
	for i := 1; i <= n; i++ {
		mover.Position = target
		if i < n {
			mover.Position = from.Add(d.Scale(float64(i) / float64(n)))
		}
		if entered := w.touch(mover, bodies); len(entered) > 0 {
			return entered
		}
	}
	return nil
}

// touch updates the contact set of mover at its current position and
// returns the contacts that just started, in body id order.
func (w *World) touch(mover *Body, bodies []*Body) [][2]*Body {
	var entered [][2]*Body
	for _, other := range bodies {
		if other == mover || !other.Static {
			continue
		}
		key := pair{mover.ID, other.ID}
		if overlaps(mover, other) {
			if !w.touching[key] {
				w.touching[key] = true
				entered = append(entered, [2]*Body{mover, other})
			}
		} else {
			delete(w.touching, key)
		}
	}
	return entered
}

func (w *World) sorted() []*Body {
	out := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (w *World) clamp(p types.Vec2, r float64) types.Vec2 {
	return types.Vec2{
		X: math.Max(r, math.Min(w.size.X-r, p.X)),
		Y: math.Max(r, math.Min(w.size.Y-r, p.Y)),
	}
}

// overlaps tests a circle against a box.
func overlaps(circle, box *Body) bool {
	return box.Bounds.TouchesCircle(circle.Position, circle.Radius)
}
