// internal/component/game_state.go
package component

// Phase is the orchestrator's top-level state. RoundComplete is never stored:
// it is resolved within the tick that sets the second completion flag.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game_over"
	}
	return "playing"
}
