// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the ebiten frontend.
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine holds the current screen.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine with no state set.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current is the active state.
func (sm *StateMachine) Current() State { return sm.current }

// Update advances the current state. An error stops the game loop.
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current != nil {
		return sm.current.Update(deltaTime)
	}
	return nil
}

// Draw renders the current state.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
