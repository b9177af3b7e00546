// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-typeball/internal/config"
	"go-typeball/internal/ui"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final score over the frozen course.
type GameOverState struct {
	sm   *StateMachine
	play *PlayState
}

func NewGameOverState(sm *StateMachine, play *PlayState) *GameOverState {
	return &GameOverState{sm: sm, play: play}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ps, err := NewPlayState(s.sm, s.play.session)
		if err != nil {
			return err
		}
		s.sm.SetState(ps)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.play.session))
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, s.play.keyboard.Top()-20, config.OverlayColor, false)

	face := s.play.session.FontFace
	st := s.play.game.State()
	ui.DrawCentered(screen, "GAME OVER", face, config.ScreenWidth/2, config.ScreenHeight/3, 6, config.SwitchedStateColor)
	ui.DrawCentered(screen, fmt.Sprintf("score %d   reached %s", st.Score, st.Difficulty), face,
		config.ScreenWidth/2, config.ScreenHeight/3+60, 3, config.TextLightColor)
	ui.DrawCentered(screen, "R restart   Esc menu", face, config.ScreenWidth/2, config.ScreenHeight/3+110, 2, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
