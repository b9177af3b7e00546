// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-typeball/internal/app"
	"go-typeball/internal/config"
	"go-typeball/internal/event"
	"go-typeball/internal/keyboard"
	"go-typeball/internal/types"
	"go-typeball/internal/ui"
	"go-typeball/pkg/render"
)

var _ State = (*PlayState)(nil)

// PlayState runs one play-through.
type PlayState struct {
	sm        *StateMachine
	session   *Session
	game      *app.Game
	source    *KeyboardSource
	renderer  *render.CourseRenderer
	wordText  *ui.WordText
	keyboard  *ui.OnScreenKeyboard
	indicator *ui.StateIndicator
}

func NewPlayState(sm *StateMachine, session *Session) (*PlayState, error) {
	source := &KeyboardSource{}
	g, err := session.NewGame(source)
	if err != nil {
		return nil, err
	}

	colors, err := courseColors(session.Settings.Colors)
	if err != nil {
		return nil, err
	}

	face := session.FontFace
	ps := &PlayState{
		sm:        sm,
		session:   session,
		game:      g,
		source:    source,
		renderer:  render.NewCourseRenderer(config.PixelsPerUnit, config.ScreenWidth, config.ScreenHeight, colors),
		wordText:  ui.NewWordText(config.ScreenWidth/2, config.WordTextY, 4, face),
		keyboard:  ui.NewOnScreenKeyboard(keyboard.RowsFor(session.Content.Words), face),
		indicator: ui.NewStateIndicator(config.ScoreIndicatorX, config.ScoreIndicatorY, config.IndicatorRadius, face),
	}

	// the first round was set up inside New, before anyone listened
	st := g.State()
	ps.wordText.SetMarkup(st.Markup)
	ps.keyboard.Visible = st.KeyboardVisible
	ps.indicator.Scheme, ps.indicator.Score, ps.indicator.Difficulty = st.Controls, st.Score, st.Difficulty

	d := g.EventDispatcher
	d.Subscribe(event.TextChanged, ps.wordText)
	d.Subscribe(event.ControlsSwitched, ps.keyboard)
	for _, t := range []event.EventType{event.ControlsSwitched, event.RoundStarted, event.DifficultyChanged} {
		d.Subscribe(t, ps.indicator)
	}
	d.SubscribeFunc(event.RoundStarted, func(event.Event) { ps.renderer.Invalidate() })
	return ps, nil
}

func courseColors(c config.Colors) (*render.CourseColors, error) {
	goal, err := render.HexRGBA(c.Goal)
	if err != nil {
		return nil, err
	}
	notGoal, err := render.HexRGBA(c.NotGoal)
	if err != nil {
		return nil, err
	}
	return &render.CourseColors{
		BackgroundColor: config.BackgroundColor,
		ObstacleColor:   config.ObstacleColor,
		WallColor:       config.WallColor,
		BallColor:       config.BallColor,
		GoalColor:       goal,
		NotGoalColor:    notGoal,
		StrokeWidth:     float32(config.StrokeWidth),
	}, nil
}

// Game is the running play-through.
func (p *PlayState) Game() *app.Game { return p.game }

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		p.game.DragEnd()
		p.sm.SetState(NewPauseState(p.sm, p))
		return nil
	}

	p.handleMouse()

	if err := p.game.Tick(deltaTime); err != nil {
		return err
	}
	if !p.game.InPlay() {
		p.sm.SetState(NewGameOverState(p.sm, p))
	}
	return nil
}

func (p *PlayState) handleMouse() {
	x, y := ebiten.CursorPosition()
	world := types.Vec2{X: float64(x) / config.PixelsPerUnit, Y: float64(y) / config.PixelsPerUnit}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if r, ok := p.keyboard.Click(x, y); ok {
			p.game.InputLetters(string(r))
			return
		}
		if p.game.Controls() == types.Normal {
			p.game.DragStart(world)
		}
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.game.DragEnd()
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.game.DragTo(world)
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen, p.game.Course().ID, p.game.Scene())
	p.wordText.Draw(screen)
	p.indicator.Draw(screen)
	p.keyboard.Draw(screen)
}

func (p *PlayState) Exit() {}
