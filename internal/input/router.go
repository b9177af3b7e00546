// Package input turns a tick's raw input into intents for the active control scheme.
package input

import (
	"go-typeball/internal/types"
	"go-typeball/internal/utils"
)

// Frame is what an input collaborator hands over once per tick.
type Frame struct {
	Chars      []rune  // runes typed since the previous tick, in order
	Horizontal float64 // -1 (left) .. 1 (right)
	Vertical   float64 // -1 (up) .. 1 (down), screen orientation
}

// Source supplies frames. Frontends poll their devices; tests script them.
type Source interface {
	Poll() Frame
}

// IntentKind tags an Intent.
type IntentKind int

const (
	TypeChar IntentKind = iota
	Steer
)

// Intent is one routed input.
type Intent struct {
	Kind      IntentKind
	Char      rune       // TypeChar
	Direction types.Vec2 // Steer, components clamped to [-1, 1]
}

// Router routes frames by control scheme. In Normal only typed runes pass,
// in Switched only the axes do; the other half of the frame is dropped.
type Router struct{}

// Route converts f into intents for scheme.
func (Router) Route(f Frame, scheme types.ControlScheme) []Intent {
	switch scheme {
	case types.Normal:
		if len(f.Chars) == 0 {
			return nil
		}
		out := make([]Intent, 0, len(f.Chars))
		for _, c := range f.Chars {
			out = append(out, Intent{Kind: TypeChar, Char: c})
		}
		return out
	case types.Switched:
		dir := types.Vec2{
			X: utils.Clamp(f.Horizontal, -1, 1),
			Y: utils.Clamp(f.Vertical, -1, 1),
		}
		return []Intent{{Kind: Steer, Direction: dir}}
	}
	return nil
}
