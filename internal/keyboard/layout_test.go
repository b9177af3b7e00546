package keyboard

import (
	"strings"
	"testing"
)

func TestLayoutHasEveryLetterOnce(t *testing.T) {
	l := NewLayout(Rows, 100, 0, 10, 10, 2)
	seen := make(map[rune]int)
	for _, k := range l.Keys {
		seen[k.Rune]++
	}
	for c := 'a'; c <= 'z'; c++ {
		if seen[c] != 1 {
			t.Errorf("Expected %q exactly once, got %d", c, seen[c])
		}
	}
}

func TestHitTest(t *testing.T) {
	l := NewLayout(Rows, 100, 0, 10, 10, 2)
	// first row is 10 keys: 10*10 + 9*2 = 118 wide, starting at 41
	tests := []struct {
		x, y float64
		want rune
		ok   bool
	}{
		{41, 0, 'q', true},
		{50.9, 9.9, 'q', true},
		{51, 5, 0, false}, // gap between q and w
		{53, 5, 'w', true},
		{100, 40, 0, false},
		{0, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := l.HitTest(tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("HitTest(%v, %v): expected %q %v, got %q %v", tt.x, tt.y, tt.want, tt.ok, got, ok)
		}
	}
}

func TestRowsAreCentred(t *testing.T) {
	l := NewLayout(Rows, 100, 0, 10, 10, 2)
	x, y, w, h := l.Bounds()
	if x != 41 || y != 0 || w != 118 || h != 34 {
		t.Errorf("Expected bounds 41 0 118 34, got %v %v %v %v", x, y, w, h)
	}
	a := l.Keys[10]
	if a.Rune != 'a' || a.Y != 12 || a.X != 47 {
		t.Errorf("Expected 'a' at 47,12, got %q at %v,%v", a.Rune, a.X, a.Y)
	}
}

func TestRowsForAddsMissingRunes(t *testing.T) {
	rows := RowsFor([]string{"Cat", "don't", "naïve", "dog"})
	if len(rows) != 4 {
		t.Fatalf("Expected one extra row, got %q", rows)
	}
	if rows[3] != "'Cï" {
		t.Errorf("Expected extra row \"'Cï\", got %q", rows[3])
	}

	l := NewLayout(rows, 100, 0, 10, 10, 2)
	have := make(map[rune]bool)
	for _, k := range l.Keys {
		have[k.Rune] = true
	}
	for _, word := range []string{"Cat", "don't", "naïve"} {
		for _, r := range word {
			if !have[r] {
				t.Errorf("Expected a key for %q in %q", r, word)
			}
		}
	}
}

func TestRowsForLowercaseBankIsQwerty(t *testing.T) {
	rows := RowsFor([]string{"cat", "dog"})
	if strings.Join(rows, "|") != strings.Join(Rows, "|") {
		t.Errorf("Expected plain QWERTY, got %q", rows)
	}
}

func TestRowsForWrapsLongExtras(t *testing.T) {
	rows := RowsFor([]string{"ABCDEFGHIJKL"})
	if len(rows) != 5 || rows[3] != "ABCDEFGHIJ" || rows[4] != "KL" {
		t.Errorf("Expected extras wrapped at ten keys, got %q", rows)
	}
}
