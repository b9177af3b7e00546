// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"go-typeball/internal/assets"
	"go-typeball/internal/component"
	"go-typeball/internal/config"
	"go-typeball/internal/course"
	"go-typeball/internal/defs"
	"go-typeball/internal/entity"
	"go-typeball/internal/event"
	"go-typeball/internal/input"
	"go-typeball/internal/physics"
	"go-typeball/internal/progress"
	"go-typeball/internal/system"
	"go-typeball/internal/types"
	"go-typeball/internal/utils"
	"go-typeball/internal/words"
)

// Options is everything New needs. Events and Rng are created when nil.
type Options struct {
	Settings config.Settings
	Content  *assets.Content
	Input    input.Source
	Log      zerolog.Logger
	Events   *event.Dispatcher
	Rng      *utils.PRNGService
}

// Game is the round orchestrator. It owns the game state and is only
// touched from the goroutine that calls Tick.
type Game struct {
	settings config.Settings
	log      zerolog.Logger

	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	ECS             *entity.ECS
	World           *physics.World

	words   *words.Source
	courses *course.Selector
	gates   *course.GatePair
	tracker *progress.Tracker
	router  input.Router
	input   input.Source

	MovementSystem  *system.MovementSystem
	CollisionSystem *system.CollisionSystem
	DragSystem      *system.DragSystem
	StateSystem     *system.StateSystem

	phase  component.Phase
	score  int
	round  int
	course defs.CourseDefinition
}

// New builds the world, draws the first word and course and rolls the
// first control scheme.
func New(opts Options) (*Game, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, err
	}
	if opts.Content == nil || opts.Content.Courses == nil {
		return nil, &types.ConfigurationError{Field: "content", Reason: "word bank and courses are required"}
	}
	if opts.Input == nil {
		opts.Input = input.NewScripted()
	}
	if opts.Events == nil {
		opts.Events = event.NewDispatcher()
	}
	if opts.Rng == nil {
		opts.Rng = utils.NewPRNGService(opts.Settings.Seed)
	}

	s := opts.Settings
	g := &Game{
		settings:        s,
		log:             opts.Log,
		EventDispatcher: opts.Events,
		Rng:             opts.Rng,
		ECS:             entity.NewECS(),
		World:           physics.NewWorld(types.Vec2{X: config.WorldWidth, Y: config.WorldHeight}, s.FixedStep),
		words:           words.NewSource(opts.Content.Words, opts.Rng),
		courses:         course.NewSelector(opts.Content.Courses, opts.Rng),
		tracker:         progress.NewTracker(opts.Events, PaletteFrom(s.Colors)),
		input:           opts.Input,
	}

	g.MovementSystem = system.NewMovementSystem(g.ECS, g.World, s.BallSpeed)
	g.CollisionSystem = system.NewCollisionSystem(g.ECS, g, g.EventDispatcher)
	g.DragSystem = system.NewDragSystem(g.ECS, g.World, g)
	g.StateSystem = system.NewStateSystem(g.EventDispatcher, g.Rng, s.SwitchedControlsRate, s.RoundsPerDifficulty)
	g.World.OnContact(g.CollisionSystem.OnContact)

	g.buildArena(opts.Content.Courses)

	for _, et := range []event.EventType{event.CompleteWord, event.CompleteCourse, event.FailCourse, event.IncorrectLetter} {
		g.EventDispatcher.Subscribe(et, g)
	}

	g.StateSystem.RollControls()
	if err := g.startRound(); err != nil {
		return nil, err
	}
	return g, nil
}

// buildArena adds the ball, the two gates and the shared walls.
func (g *Game) buildArena(lib *defs.CourseLibrary) {
	ballID := g.ECS.NewEntity()
	g.ECS.Ball = &component.Ball{ID: ballID, Radius: config.BallRadius}
	g.World.AddCircle(ballID, physics.TagPlayer, types.Vec2{}, config.BallRadius)

	var pair [2]*component.Gate
	for i, def := range lib.Gates {
		id := g.ECS.NewEntity()
		pair[i] = component.NewGate(id, def.Name, def.Goal)
		g.ECS.Gates[id] = pair[i]
		g.World.AddBox(id, physics.TagGate, def.Bounds)
	}
	g.gates = course.NewGatePair(pair[0], pair[1])

	for _, wall := range lib.Walls {
		id := g.ECS.NewEntity()
		g.ECS.Obstacles[id] = &component.Obstacle{ID: id, Bounds: wall, Wall: true}
		g.World.AddBox(id, physics.TagObstacle, wall)
	}
}

// Tick runs one frame: input and word matching first, then fixed-step
// physics, then the round-complete check.
func (g *Game) Tick(deltaTime float64) error {
	if g.phase == component.GameOver {
		return nil
	}
	if deltaTime > g.settings.MaxDeltaTime {
		deltaTime = g.settings.MaxDeltaTime
	}

	frame := g.input.Poll()
	for _, in := range g.router.Route(frame, g.StateSystem.Controls()) {
		if g.phase != component.Playing {
			return nil
		}
		switch in.Kind {
		case input.TypeChar:
			g.tracker.Consume(in.Char)
		case input.Steer:
			g.MovementSystem.Update(in.Direction, deltaTime)
		}
	}

	g.World.Step(deltaTime)
	if g.phase != component.Playing {
		return nil
	}

	if g.tracker.WordComplete() && g.tracker.CourseComplete() {
		return g.completeRound()
	}
	return nil
}

// InputLetters feeds runes from the on-screen keyboard. It is the typing
// path while the keyboard steers the ball, so it only works when the
// on-screen keyboard is shown.
func (g *Game) InputLetters(letters string) {
	if g.phase != component.Playing || g.StateSystem.Controls() != types.Switched {
		return
	}
	for _, c := range letters {
		if g.phase != component.Playing {
			return
		}
		g.tracker.Consume(c)
	}
}

// DragStart, DragTo and DragEnd move the ball with a pointer in the Normal scheme.
func (g *Game) DragStart(p types.Vec2) bool { return g.DragSystem.Press(p) }
func (g *Game) DragTo(p types.Vec2)         { g.DragSystem.Drag(p) }
func (g *Game) DragEnd()                    { g.DragSystem.Release() }

// OnEvent reacts to round events.
func (g *Game) OnEvent(e event.Event) {
	if g.phase != component.Playing {
		return
	}
	switch e.Type {
	case event.CompleteWord:
		g.log.Debug().Str("word", g.tracker.Round().Word).Msg("word complete")
	case event.CompleteCourse:
		if g.tracker.MarkCourseComplete() {
			g.DragSystem.Release()
			g.log.Debug().Str("course", g.course.ID).Msg("course complete")
		}
	case event.IncorrectLetter:
		if g.settings.StrictTyping {
			g.EventDispatcher.Emit(event.FailCourse, event.FailPayload{Reason: "incorrect letter"})
		}
	case event.FailCourse:
		reason := "failed"
		if p, ok := e.Data.(event.FailPayload); ok {
			reason = p.Reason
		}
		g.gameOver(reason)
	}
}

func (g *Game) completeRound() error {
	g.score++
	g.EventDispatcher.Emit(event.RoundCompleted, g.roundPayload())
	g.log.Info().Int("round", g.round).Int("score", g.score).Msg("round complete")

	g.StateSystem.UpdateDifficulty(g.score)
	for _, gate := range g.gates.Advance() {
		g.EventDispatcher.Emit(event.GoalChanged, event.GoalPayload{GateID: gate.ID, IsGoal: gate.IsGoal()})
	}
	g.StateSystem.RollControls()
	return g.startRound()
}

func (g *Game) startRound() error {
	difficulty := g.StateSystem.Difficulty()

	word, err := g.drawWord(difficulty)
	if err != nil {
		return err
	}
	next, err := g.courses.Select(difficulty)
	if err != nil {
		return err
	}

	g.loadCourse(next)
	g.DragSystem.Release()
	g.tracker.Reset(word)
	g.round++

	g.log.Info().
		Int("round", g.round).
		Str("word", word).
		Str("course", next.ID).
		Stringer("difficulty", difficulty).
		Stringer("controls", g.StateSystem.Controls()).
		Msg("round started")
	g.EventDispatcher.Emit(event.RoundStarted, g.roundPayload())
	return nil
}

// drawWord draws within the difficulty's length limit and relaxes the
// limit one tier at a time while the pool has nothing short enough.
func (g *Game) drawWord(d types.Difficulty) (string, error) {
	for tier := d; tier <= types.Hard; tier++ {
		limit := g.settings.MaxLength(tier)
		word, err := g.words.Draw(limit)
		if err == nil {
			return word, nil
		}
		var exhausted *types.ContentExhaustedError
		if !errors.As(err, &exhausted) {
			return "", err
		}
		g.log.Warn().Int("max_length", limit).Stringer("difficulty", d).Msg("no word fits, relaxing length limit")
	}
	return "", fmt.Errorf("draw word: %w", &types.ContentExhaustedError{Source: "words"})
}

func (g *Game) loadCourse(def defs.CourseDefinition) {
	for _, id := range g.ECS.ClearCourseObstacles() {
		g.World.Remove(id)
	}
	for _, bounds := range def.Obstacles {
		id := g.ECS.NewEntity()
		g.ECS.Obstacles[id] = &component.Obstacle{ID: id, Bounds: bounds}
		g.World.AddBox(id, physics.TagObstacle, bounds)
	}
	g.course = def
	g.ECS.Ball.Spawn = def.Spawn
	g.World.Teleport(g.ECS.Ball.ID, def.Spawn)
}

func (g *Game) gameOver(reason string) {
	if g.phase == component.GameOver {
		return
	}
	g.phase = component.GameOver
	g.DragSystem.Release()
	g.StateSystem.ForceNormal()
	g.log.Info().Str("reason", reason).Int("score", g.score).Int("round", g.round).Msg("game over")
	g.EventDispatcher.Emit(event.GameOver, event.FailPayload{Reason: reason, Score: g.score})
}

func (g *Game) roundPayload() event.RoundPayload {
	return event.RoundPayload{
		Round:      g.round,
		Score:      g.score,
		Word:       g.tracker.Round().Word,
		CourseID:   g.course.ID,
		Difficulty: g.StateSystem.Difficulty(),
		Controls:   g.StateSystem.Controls(),
	}
}

// GameContext

func (g *Game) InPlay() bool                  { return g.phase == component.Playing }
func (g *Game) CourseComplete() bool          { return g.tracker.CourseComplete() }
func (g *Game) Controls() types.ControlScheme { return g.StateSystem.Controls() }
