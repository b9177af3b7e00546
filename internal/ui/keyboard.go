// internal/ui/keyboard.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-typeball/internal/config"
	"go-typeball/internal/event"
	"go-typeball/internal/keyboard"
)

// OnScreenKeyboard is the clickable keyboard used for typing while the
// real keyboard steers the ball.
type OnScreenKeyboard struct {
	layout        *keyboard.Layout
	fontFace      font.Face
	Visible       bool
	lastKey       rune
	LastClickTime time.Time
}

// NewOnScreenKeyboard lays rows out upwards from config.KeyboardBottom.
func NewOnScreenKeyboard(rows []string, fontFace font.Face) *OnScreenKeyboard {
	top := config.KeyboardBottom - float64(len(rows))*(config.KeySize+config.KeyGap)
	return &OnScreenKeyboard{
		layout:   keyboard.NewLayout(rows, config.ScreenWidth/2, top, config.KeySize, config.KeySize, config.KeyGap),
		fontFace: fontFace,
	}
}

// Top is the y of the first key row.
func (k *OnScreenKeyboard) Top() float32 {
	_, y, _, _ := k.layout.Bounds()
	return float32(y)
}

// OnEvent follows ControlsSwitched.
func (k *OnScreenKeyboard) OnEvent(e event.Event) {
	if p, ok := e.Data.(event.ControlsPayload); ok {
		k.Visible = p.KeyboardVisible
	}
}

// Click returns the letter under the pointer, if the keyboard is shown.
func (k *OnScreenKeyboard) Click(x, y int) (rune, bool) {
	if !k.Visible {
		return 0, false
	}
	r, ok := k.layout.HitTest(float64(x), float64(y))
	if ok {
		k.lastKey = r
		k.LastClickTime = time.Now()
	}
	return r, ok
}

func (k *OnScreenKeyboard) Draw(screen *ebiten.Image) {
	if !k.Visible {
		return
	}
	elapsed := time.Since(k.LastClickTime).Seconds()
	pulse := float32(0.3 * math.Exp(-elapsed*8))

	for _, key := range k.layout.Keys {
		x, y, w, h := float32(key.X), float32(key.Y), float32(key.W), float32(key.H)
		if key.Rune == k.lastKey && pulse > 0.01 {
			grow := w * pulse / 2
			x, y, w, h = x-grow, y-grow, w+2*grow, h+2*grow
		}
		vector.DrawFilledRect(screen, x, y, w, h, config.KeyColor, true)
		vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, config.KeyStrokeColor, true)
		DrawCentered(screen, keyboard.Label(key.Rune), k.fontFace, float64(x+w/2), float64(y+h/2), 2, config.TextLightColor)
	}
}
