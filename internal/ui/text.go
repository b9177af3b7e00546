// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextWidth is the advance width of s at scale.
func TextWidth(face font.Face, s string, scale float64) float64 {
	return float64(text.BoundString(face, s).Dx()) * scale
}

// DrawText draws s with its baseline-left corner at (x, y), scaled.
func DrawText(screen *ebiten.Image, s string, face font.Face, x, y, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, op)
}

// DrawCentered draws s horizontally centred on cx and vertically centred on cy.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy, scale float64, clr color.Color) {
	b := text.BoundString(face, s)
	x := cx - float64(b.Dx())*scale/2 - float64(b.Min.X)*scale
	y := cy - float64(b.Dy())*scale/2 - float64(b.Min.Y)*scale
	DrawText(screen, s, face, x, y, scale, clr)
}
