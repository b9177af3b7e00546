package words

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"go-typeball/internal/types"
	"go-typeball/internal/utils"
)

func TestLoadStripsTerminatorsAndBlankLines(t *testing.T) {
	bank := "cat\r\ndog\n\n  \nHorse\r\nçava\n"
	got, err := Load(strings.NewReader(bank))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{"cat", "dog", "Horse", "çava"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestPoolClosure(t *testing.T) {
	words := []string{"a", "bb", "ccc", "dddd", "eeeee", "ffffff"}
	s := NewSource(words, utils.NewPRNGService(1))

	for i := 0; i < 50; i++ {
		if _, err := s.Draw(0); err != nil {
			t.Fatalf("Draw %d failed: %v", i, err)
		}
		if s.Available()+s.Used() != len(words) {
			t.Fatalf("Expected pool size %d, got %d available + %d used", len(words), s.Available(), s.Used())
		}
		if s.Len() != len(words) {
			t.Fatalf("Expected Len %d, got %d", len(words), s.Len())
		}
	}
}

func TestNoRepeatBeforeExhaustion(t *testing.T) {
	words := []string{"alpha", "beta", "gamma", "delta", "omega"}
	s := NewSource(words, utils.NewPRNGService(99))

	for cycle := 0; cycle < 3; cycle++ {
		seen := map[string]bool{}
		for i := 0; i < len(words); i++ {
			w, err := s.Draw(0)
			if err != nil {
				t.Fatalf("Draw failed: %v", err)
			}
			if seen[w] {
				t.Fatalf("Cycle %d: %q drawn twice before the pool was exhausted", cycle, w)
			}
			seen[w] = true
		}
		if len(seen) != len(words) {
			t.Errorf("Expected every word once per cycle, got %d distinct", len(seen))
		}
	}
}

func TestDrawRespectsMaxLength(t *testing.T) {
	words := []string{"ox", "cat", "horse", "elephant", "hippopotamus", "ant", "bee"}
	s := NewSource(words, utils.NewPRNGService(5))

	for i := 0; i < 3; i++ {
		w, err := s.Draw(3)
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if utf8.RuneCountInString(w) > 3 {
			t.Errorf("Expected length <= 3, got %q", w)
		}
	}
}

func TestDrawExhaustedFilterLeavesPoolUntouched(t *testing.T) {
	s := NewSource([]string{"elephant", "giraffe"}, utils.NewPRNGService(5))

	_, err := s.Draw(3)
	var ce *types.ContentExhaustedError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ContentExhaustedError, got %v", err)
	}
	if s.Available() != 2 || s.Used() != 0 {
		t.Errorf("Expected pool untouched, got %d available %d used", s.Available(), s.Used())
	}

	if _, err := s.Draw(0); err != nil {
		t.Errorf("Expected unfiltered draw to succeed, got %v", err)
	}
}

func TestDrawEmptyPool(t *testing.T) {
	s := NewSource(nil, utils.NewPRNGService(1))
	_, err := s.Draw(0)
	var ce *types.ContentExhaustedError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ContentExhaustedError on empty pool, got %v", err)
	}
}

func TestRecycleRestoresEveryWord(t *testing.T) {
	words := []string{"one", "two", "three"}
	s := NewSource(words, utils.NewPRNGService(11))
	for range words {
		if _, err := s.Draw(0); err != nil {
			t.Fatal(err)
		}
	}
	if s.Available() != 0 || s.Used() != 3 {
		t.Fatalf("Expected 0/3 before recycle, got %d/%d", s.Available(), s.Used())
	}
	if _, err := s.Draw(0); err != nil {
		t.Fatal(err)
	}
	if s.Available() != 2 || s.Used() != 1 {
		t.Errorf("Expected 2/1 after recycle and draw, got %d/%d", s.Available(), s.Used())
	}
}

func TestNewSourceCopiesInput(t *testing.T) {
	words := []string{"x", "y"}
	s := NewSource(words, utils.NewPRNGService(1))
	words[0] = "mutated"
	for i := 0; i < 2; i++ {
		w, _ := s.Draw(0)
		if w == "mutated" {
			t.Fatalf("Expected pool to own its words")
		}
	}
}
