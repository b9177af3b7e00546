// internal/term/source.go
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"go-typeball/internal/input"
)

// holdTime is how long one arrow press keeps its axis held. Terminals
// report key repeats but never releases, so each repeat renews the hold.
const holdTime = 150 * time.Millisecond

// KeySource buffers key events between ticks and serves them as frames.
type KeySource struct {
	chars          []rune
	horizontal     float64
	vertical       float64
	hUntil, vUntil time.Time
	now            func() time.Time
}

func NewKeySource(now func() time.Time) *KeySource {
	if now == nil {
		now = time.Now
	}
	return &KeySource{now: now}
}

// Press records a key and reports whether it was a game key.
func (s *KeySource) Press(k tcell.Key, r rune) bool {
	until := s.now().Add(holdTime)
	switch k {
	case tcell.KeyRune:
		s.chars = append(s.chars, r)
	case tcell.KeyLeft:
		s.horizontal, s.hUntil = -1, until
	case tcell.KeyRight:
		s.horizontal, s.hUntil = 1, until
	case tcell.KeyUp:
		s.vertical, s.vUntil = -1, until
	case tcell.KeyDown:
		s.vertical, s.vUntil = 1, until
	default:
		return false
	}
	return true
}

// Poll drains the typed runes and reports the axes still held.
func (s *KeySource) Poll() input.Frame {
	now := s.now()
	f := input.Frame{Chars: s.chars}
	s.chars = nil
	if now.Before(s.hUntil) {
		f.Horizontal = s.horizontal
	}
	if now.Before(s.vUntil) {
		f.Vertical = s.vertical
	}
	return f
}

// Reset forgets pending input, used on restart.
func (s *KeySource) Reset() {
	s.chars = nil
	s.hUntil, s.vUntil = time.Time{}, time.Time{}
}
