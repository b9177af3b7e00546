// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-typeball/pkg/render"
)

// Button is a clickable rectangle with a label.
type Button struct {
	Rect    image.Rectangle
	Text    string
	BgColor color.RGBA
	FgColor color.RGBA
}

func NewButton(rect image.Rectangle, label string, bg, fg color.RGBA) *Button {
	return &Button{Rect: rect, Text: label, BgColor: bg, FgColor: fg}
}

// Contains reports whether the pixel is on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw renders the button, darkened while hovered.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = render.DarkenColor(bg)
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, b.FgColor, true)
	DrawCentered(screen, b.Text, face, float64(x+w/2), float64(y+h/2), 2, b.FgColor)
}
