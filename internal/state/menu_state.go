// internal/state/menu_state.go
package state

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-typeball/internal/config"
	"go-typeball/internal/ui"
)

var _ State = (*MenuState)(nil)

// MenuState is the title screen: Play or Quit.
type MenuState struct {
	sm      *StateMachine
	session *Session
	play    *ui.Button
	quit    *ui.Button
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	const w, h = 240, 60
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	fg := config.TextLightColor
	return &MenuState{
		sm:      sm,
		session: session,
		play:    ui.NewButton(image.Rect(cx-w/2, cy, cx+w/2, cy+h), "PLAY", config.NormalStateColor, fg),
		quit:    ui.NewButton(image.Rect(cx-w/2, cy+h+20, cx+w/2, cy+2*h+20), "QUIT", config.SwitchedStateColor, fg),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) error {
	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || (clicked && m.play.Contains(x, y)) {
		return m.start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || (clicked && m.quit.Contains(x, y)) {
		return ebiten.Termination
	}
	return nil
}

func (m *MenuState) start() error {
	ps, err := NewPlayState(m.sm, m.session)
	if err != nil {
		return err
	}
	m.sm.SetState(ps)
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.session.FontFace
	ui.DrawCentered(screen, "TYPEBALL", face, config.ScreenWidth/2, config.ScreenHeight/3, 8, config.TextLightColor)
	ui.DrawCentered(screen, "type the word and roll the ball into the green gate", face,
		config.ScreenWidth/2, config.ScreenHeight/3+70, 2, color.RGBA{180, 180, 190, 255})

	x, y := ebiten.CursorPosition()
	m.play.Draw(screen, face, m.play.Contains(x, y))
	m.quit.Draw(screen, face, m.quit.Contains(x, y))
}

func (m *MenuState) Exit() {}
