// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-typeball/internal/config"
	"go-typeball/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState freezes a play-through. Nothing ticks while it is active,
// so the game sees no time pass.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prevState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.stateMachine.SetState(s.previousState)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.previousState.session))
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	face := s.previousState.session.FontFace
	ui.DrawCentered(screen, "PAUSED", face, config.ScreenWidth/2, config.ScreenHeight/2-20, 5, config.TextLightColor)
	ui.DrawCentered(screen, "Esc resume   Q menu", face, config.ScreenWidth/2, config.ScreenHeight/2+40, 2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
