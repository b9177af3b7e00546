package course

import (
	"errors"
	"testing"

	"go-typeball/internal/component"
	"go-typeball/internal/defs"
	"go-typeball/internal/types"
	"go-typeball/internal/utils"
)

func library(tiers ...string) *defs.CourseLibrary {
	lib := &defs.CourseLibrary{}
	for i, tier := range tiers {
		lib.Courses = append(lib.Courses, defs.CourseDefinition{
			ID:   tier + "-" + string(rune('a'+i)),
			Tier: tier,
		})
	}
	return lib
}

func TestSelectNeverExceedsDifficulty(t *testing.T) {
	s := NewSelector(library("easy", "easy", "medium", "hard", "hard"), utils.NewPRNGService(1))

	for _, d := range []types.Difficulty{types.Easy, types.Medium, types.Hard} {
		for i := 0; i < 200; i++ {
			c, err := s.Select(d)
			if err != nil {
				t.Fatalf("Select(%v) failed: %v", d, err)
			}
			tier, _ := types.ParseDifficulty(c.Tier)
			if tier > d {
				t.Fatalf("Select(%v) returned a %v course", d, tier)
			}
		}
	}
}

func TestSelectCoversAllTiersAtHard(t *testing.T) {
	s := NewSelector(library("easy", "medium", "hard"), utils.NewPRNGService(2))
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		c, err := s.Select(types.Hard)
		if err != nil {
			t.Fatal(err)
		}
		seen[c.Tier] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all three tiers to be sampled, got %v", seen)
	}
}

func TestSelectInvalidDifficulty(t *testing.T) {
	s := NewSelector(library("easy"), utils.NewPRNGService(1))
	_, err := s.Select(types.Difficulty(7))
	var cfgErr *types.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigurationError, got %v", err)
	}
}

func TestSelectRetriesEmptyTier(t *testing.T) {
	s := NewSelector(library("medium"), utils.NewPRNGService(4))
	for i := 0; i < 50; i++ {
		c, err := s.Select(types.Hard)
		if err != nil {
			t.Fatalf("Expected relaxed selection, got %v", err)
		}
		if c.Tier != "medium" {
			t.Fatalf("Expected the only course, got %s", c.Tier)
		}
	}
}

func TestSelectExhausted(t *testing.T) {
	s := NewSelector(library("hard"), utils.NewPRNGService(4))
	_, err := s.Select(types.Easy)
	var ce *types.ContentExhaustedError
	if !errors.As(err, &ce) {
		t.Errorf("Expected ContentExhaustedError, got %v", err)
	}
}

func TestGatePairAlternates(t *testing.T) {
	top := component.NewGate(1, "top", true)
	bottom := component.NewGate(2, "bottom", false)
	p := NewGatePair(top, bottom)

	for n := 1; n <= 5; n++ {
		p.Advance()
		wantTopGoal := n%2 == 0
		if top.IsGoal() != wantTopGoal {
			t.Errorf("After %d flips expected top goal=%v", n, wantTopGoal)
		}
		if top.IsGoal() == bottom.IsGoal() {
			t.Fatalf("Expected exactly one goal gate after %d flips", n)
		}
		if p.Flips() != n {
			t.Errorf("Expected %d flips, got %d", n, p.Flips())
		}
	}
}

func TestGatePairNormalisesFlags(t *testing.T) {
	a := component.NewGate(1, "top", false)
	b := component.NewGate(2, "bottom", false)
	p := NewGatePair(a, b)
	if p.Goal() != a || b.IsGoal() {
		t.Errorf("Expected first gate to become the goal")
	}

	c := component.NewGate(3, "top", false)
	d := component.NewGate(4, "bottom", true)
	q := NewGatePair(c, d)
	if q.Goal() != d {
		t.Errorf("Expected existing single goal to be kept")
	}
}
