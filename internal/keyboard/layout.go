// Package keyboard lays out the on-screen keyboard and maps pointer
// positions to letters. Units are whatever the frontend draws in:
// pixels for ebiten, cells for the terminal.
package keyboard

import (
	"sort"
	"strings"
	"unicode"
)

// Rows is the QWERTY letter layout.
var Rows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// RowsFor returns the QWERTY rows followed by extra rows holding every rune
// of bank that QWERTY lacks, in code point order, so any word drawn from
// the bank can be typed on screen.
func RowsFor(bank []string) []string {
	base := strings.Join(Rows, "")
	seen := make(map[rune]bool)
	var extra []rune
	for _, word := range bank {
		for _, r := range word {
			if seen[r] || strings.ContainsRune(base, r) {
				continue
			}
			seen[r] = true
			extra = append(extra, r)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	rows := append([]string(nil), Rows...)
	width := len(Rows[0])
	for len(extra) > 0 {
		n := min(width, len(extra))
		rows = append(rows, string(extra[:n]))
		extra = extra[n:]
	}
	return rows
}

// Label is the text drawn on a key.
func Label(r rune) string {
	if unicode.IsSpace(r) {
		return "␣"
	}
	return string(r)
}

// Key is one button.
type Key struct {
	Rune       rune
	X, Y, W, H float64
}

// Contains reports whether (x, y) is on the key.
func (k Key) Contains(x, y float64) bool {
	return x >= k.X && x < k.X+k.W && y >= k.Y && y < k.Y+k.H
}

// Layout is a keyboard centred horizontally on CenterX with its top row at Top.
type Layout struct {
	Keys []Key
}

// NewLayout places rows, one string per row. Each row is centred, which
// gives the usual stagger between rows of different length.
func NewLayout(rows []string, centerX, top, keyW, keyH, gap float64) *Layout {
	l := &Layout{}
	for r, row := range rows {
		letters := []rune(row)
		width := float64(len(letters))*keyW + float64(len(letters)-1)*gap
		x := centerX - width/2
		y := top + float64(r)*(keyH+gap)
		for i, c := range letters {
			l.Keys = append(l.Keys, Key{Rune: c, X: x + float64(i)*(keyW+gap), Y: y, W: keyW, H: keyH})
		}
	}
	return l
}

// HitTest returns the letter under (x, y).
func (l *Layout) HitTest(x, y float64) (rune, bool) {
	for _, k := range l.Keys {
		if k.Contains(x, y) {
			return k.Rune, true
		}
	}
	return 0, false
}

// Bounds is the smallest box holding every key.
func (l *Layout) Bounds() (x, y, w, h float64) {
	if len(l.Keys) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := l.Keys[0].X, l.Keys[0].Y
	maxX, maxY := minX, minY
	for _, k := range l.Keys {
		minX = min(minX, k.X)
		minY = min(minY, k.Y)
		maxX = max(maxX, k.X+k.W)
		maxY = max(maxY, k.Y+k.H)
	}
	return minX, minY, maxX - minX, maxY - minY
}
