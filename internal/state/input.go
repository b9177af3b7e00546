// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-typeball/internal/input"
)

// KeyboardSource polls ebiten for typed runes and the two steering axes.
type KeyboardSource struct {
	chars []rune
}

func (k *KeyboardSource) Poll() input.Frame {
	k.chars = ebiten.AppendInputChars(k.chars[:0])
	return input.Frame{
		Chars:      append([]rune(nil), k.chars...),
		Horizontal: axis(ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyArrowRight, ebiten.KeyD),
		Vertical:   axis(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyArrowDown, ebiten.KeyS),
	}
}

func axis(negA, negB, posA, posB ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(negA) || ebiten.IsKeyPressed(negB) {
		v--
	}
	if ebiten.IsKeyPressed(posA) || ebiten.IsKeyPressed(posB) {
		v++
	}
	return v
}
