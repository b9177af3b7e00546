// internal/term/draw.go
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-typeball/internal/app"
	"go-typeball/internal/config"
	"go-typeball/internal/keyboard"
	"go-typeball/internal/types"
)

var (
	styleBase     = tcell.StyleDefault.Background(rgba(config.BackgroundColor)).Foreground(rgba(config.TextLightColor))
	styleObstacle = styleBase.Foreground(rgba(config.ObstacleColor))
	styleWall     = styleBase.Foreground(rgba(config.WallColor))
	styleBall     = styleBase.Foreground(rgba(config.BallColor)).Bold(true)
	styleKey      = tcell.StyleDefault.Background(rgba(config.KeyColor)).Foreground(rgba(config.TextLightColor))
	styleNormal   = styleBase.Foreground(rgba(config.NormalStateColor)).Bold(true)
	styleSwitched = styleBase.Foreground(rgba(config.SwitchedStateColor)).Bold(true)
	styleHint     = styleBase.Dim(true)
)

// Draw renders the whole frame.
func (f *Frontend) Draw() {
	f.screen.SetStyle(styleBase)
	f.screen.Clear()

	st := f.game.State()
	f.drawStatus(st)
	f.drawWord()
	f.drawArena(f.game.Scene())
	if st.KeyboardVisible {
		f.drawKeyboard()
	}
	f.drawFooter(st)
	f.screen.Show()
}

func (f *Frontend) drawStatus(st app.State) {
	scheme, style := "TYPE", styleNormal
	if st.Controls == types.Switched {
		scheme, style = "STEER", styleSwitched
	}
	x := f.text(0, statusRow, fmt.Sprintf(" score %d  round %d  %s  ", st.Score, st.Round, st.Difficulty), styleBase)
	f.text(x, statusRow, "["+scheme+"]", style)
}

func (f *Frontend) drawWord() {
	w, _ := f.screen.Size()
	total := 0
	for _, sp := range f.words {
		total += len([]rune(sp.Text))
	}
	x := max(0, (w-total)/2)
	for _, sp := range f.words {
		x = f.text(x, wordRow, sp.Text, styleBase.Foreground(rgb(sp.Color)).Bold(true))
	}
}

func (f *Frontend) drawArena(sc app.Scene) {
	v := f.view
	for y := v.Y; y < v.Y+v.Rows; y++ {
		for x := v.X; x < v.X+v.Cols; x++ {
			r, style := f.cell(sc, x, y)
			if r != ' ' {
				f.screen.SetContent(x, y, r, nil, style)
			}
		}
	}
	bx, by := v.ToCell(sc.Ball)
	ball := 'o'
	if sc.Dragging {
		ball = '@'
	}
	f.screen.SetContent(bx, by, ball, nil, styleBall)
}

func (f *Frontend) cell(sc app.Scene, x, y int) (rune, tcell.Style) {
	for _, g := range sc.Gates {
		if !f.view.Covers(x, y, g.Bounds) {
			continue
		}
		if g.IsGoal {
			return '▒', styleBase.Foreground(f.goal)
		}
		if f.notGoal != tcell.ColorDefault {
			return '░', styleBase.Foreground(f.notGoal)
		}
	}
	for _, o := range sc.Obstacles {
		if !f.view.Covers(x, y, o.Bounds) {
			continue
		}
		if o.Wall {
			return '▓', styleWall
		}
		return '█', styleObstacle
	}
	return ' ', styleBase
}

func (f *Frontend) drawKeyboard() {
	for _, k := range f.keys.Keys {
		f.text(int(k.X), int(k.Y), " "+keyboard.Label(k.Rune)+" ", styleKey)
	}
}

func (f *Frontend) drawFooter(st app.State) {
	_, h := f.screen.Size()
	hint := "type the word, reach the green gate   esc pause   ctrl-c quit"
	switch {
	case !f.game.InPlay():
		hint = fmt.Sprintf("GAME OVER  score %d   enter restart   esc quit", st.Score)
	case f.paused:
		hint = "PAUSED   esc resume"
	case st.Controls == types.Switched:
		hint = "arrows steer the ball, click the letters   esc pause"
	}
	f.text(0, h-1, hint, styleHint)
}

// text writes s from (x, y) and returns the column after it.
func (f *Frontend) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
