// internal/ui/word_text.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-typeball/internal/event"
	"go-typeball/pkg/render"
)

// WordText shows the current word as coloured spans. It listens for
// TextChanged so it never reads the tracker directly.
type WordText struct {
	X, Y     float64
	Scale    float64
	fontFace font.Face
	spans    []render.Span
	Err      error
}

func NewWordText(x, y, scale float64, fontFace font.Face) *WordText {
	return &WordText{X: x, Y: y, Scale: scale, fontFace: fontFace}
}

func (w *WordText) OnEvent(e event.Event) {
	p, ok := e.Data.(event.TextPayload)
	if !ok {
		return
	}
	w.SetMarkup(p.Markup)
}

// SetMarkup replaces the spans. Bad markup keeps the old text.
func (w *WordText) SetMarkup(markup string) {
	spans, err := render.ParseMarkup(markup)
	w.Err = err
	if err != nil {
		return
	}
	w.spans = spans
}

// Text is the plain word being shown.
func (w *WordText) Text() string { return render.PlainText(w.spans) }

func (w *WordText) Draw(screen *ebiten.Image) {
	total := TextWidth(w.fontFace, w.Text(), w.Scale)
	x := w.X - total/2
	for _, sp := range w.spans {
		DrawText(screen, sp.Text, w.fontFace, x, w.Y, w.Scale, render.RGBA(sp.Color))
		x += TextWidth(w.fontFace, sp.Text, w.Scale)
	}
}
