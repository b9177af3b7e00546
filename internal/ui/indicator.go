// internal/ui/indicator.go
package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-typeball/internal/config"
	"go-typeball/internal/event"
	"go-typeball/internal/types"
)

// StateIndicator shows the control scheme as a coloured dot, with the
// score and tier beside it. It pulses when the scheme changes.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	fontFace      font.Face
	Scheme        types.ControlScheme
	Score         int
	Difficulty    types.Difficulty
	LastPulseTime time.Time
}

func NewStateIndicator(x, y, radius float32, fontFace font.Face) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius, fontFace: fontFace}
}

func (i *StateIndicator) OnEvent(e event.Event) {
	switch p := e.Data.(type) {
	case event.ControlsPayload:
		i.Scheme = p.Scheme
		i.LastPulseTime = time.Now()
	case event.RoundPayload:
		i.Score = p.Score
		i.Difficulty = p.Difficulty
		i.Scheme = p.Controls
	case event.DifficultyPayload:
		i.Difficulty = p.To
	}
}

func (i *StateIndicator) Draw(screen *ebiten.Image) {
	elapsed := time.Since(i.LastPulseTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	c := config.NormalStateColor
	if i.Scheme == types.Switched {
		c = config.SwitchedStateColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.TextLightColor, true)

	label := fmt.Sprintf("%d  %s", i.Score, i.Difficulty)
	x := float64(i.X) - float64(i.Radius)*2 - TextWidth(i.fontFace, label, 2)
	DrawCentered(screen, label, i.fontFace, x+TextWidth(i.fontFace, label, 2)/2, float64(i.Y), 2, config.TextLightColor)
}
