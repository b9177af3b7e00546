// internal/progress/markup.go
package progress

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette colours the word markup.
type Palette struct {
	Completed colorful.Color
	Remaining colorful.Color
	Finished  colorful.Color
}

// DefaultPalette is yellow for typed letters, white for the rest and green once finished.
func DefaultPalette() Palette {
	return Palette{
		Completed: colorful.Color{R: 1, G: 1, B: 0},
		Remaining: colorful.Color{R: 1, G: 1, B: 1},
		Finished:  colorful.Color{R: 0, G: 1, B: 0},
	}
}

// Markup renders the word as colour spans for the rendering collaborator:
// a completed span and a remaining span while typing, one finished span at the end.
// Empty spans are left out.
func (t *Tracker) Markup() string {
	var b strings.Builder
	if t.state == Complete && t.word != "" {
		span(&b, t.palette.Finished, t.completed)
		return b.String()
	}
	span(&b, t.palette.Completed, t.completed)
	span(&b, t.palette.Remaining, t.remaining)
	return b.String()
}

func span(b *strings.Builder, c colorful.Color, text string) {
	if text == "" {
		return
	}
	b.WriteString("<color=")
	b.WriteString(c.Hex())
	b.WriteString(">")
	b.WriteString(text)
	b.WriteString("</color>")
}
