// internal/system/state.go
package system

import (
	"go-typeball/internal/event"
	"go-typeball/internal/types"
)

// Roller is satisfied by *utils.PRNGService.
type Roller interface {
	Bernoulli(p float64) bool
}

// StateSystem owns the control scheme and the difficulty curve.
type StateSystem struct {
	eventDispatcher *event.Dispatcher
	rng             Roller
	switchRate      float64
	roundsPerTier   int

	controls   types.ControlScheme
	difficulty types.Difficulty
	gameOver   bool
}

func NewStateSystem(eventDispatcher *event.Dispatcher, rng Roller, switchRate float64, roundsPerTier int) *StateSystem {
	return &StateSystem{
		eventDispatcher: eventDispatcher,
		rng:             rng,
		switchRate:      switchRate,
		roundsPerTier:   roundsPerTier,
		difficulty:      types.Easy,
	}
}

// RollControls draws the scheme for the next round: Switched with
// probability switchRate. ControlsSwitched is raised only on a change.
func (s *StateSystem) RollControls() types.ControlScheme {
	next := types.Normal
	if s.rng.Bernoulli(s.switchRate) {
		next = types.Switched
	}
	s.setControls(next)
	return next
}

// ForceNormal is used on game over.
func (s *StateSystem) ForceNormal() {
	s.gameOver = true
	s.setControls(types.Normal)
}

func (s *StateSystem) setControls(next types.ControlScheme) {
	if next == s.controls {
		return
	}
	s.controls = next
	s.eventDispatcher.Emit(event.ControlsSwitched, event.ControlsPayload{
		Scheme:          next,
		KeyboardVisible: s.KeyboardVisible(),
	})
}

// Controls is the active scheme.
func (s *StateSystem) Controls() types.ControlScheme { return s.controls }

// KeyboardVisible says whether the on-screen keyboard is shown. It is the
// typing path while Switched, and it is shown again once the game is over.
func (s *StateSystem) KeyboardVisible() bool {
	return s.controls == types.Switched || s.gameOver
}

// Difficulty is the current tier.
func (s *StateSystem) Difficulty() types.Difficulty { return s.difficulty }

// UpdateDifficulty moves up one tier every roundsPerTier points, capped at Hard.
// It never goes down.
func (s *StateSystem) UpdateDifficulty(score int) types.Difficulty {
	if s.roundsPerTier <= 0 {
		return s.difficulty
	}
	next := types.Difficulty(score / s.roundsPerTier)
	if next > types.Hard {
		next = types.Hard
	}
	if next > s.difficulty {
		from := s.difficulty
		s.difficulty = next
		s.eventDispatcher.Emit(event.DifficultyChanged, event.DifficultyPayload{From: from, To: next})
	}
	return s.difficulty
}
