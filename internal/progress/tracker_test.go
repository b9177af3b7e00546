package progress

import (
	"testing"

	"go-typeball/internal/event"
)

type eventLog struct {
	types   []event.EventType
	markups []string
}

func newTracker() (*Tracker, *eventLog) {
	d := event.NewDispatcher()
	log := &eventLog{}
	for _, et := range []event.EventType{event.CorrectLetter, event.IncorrectLetter, event.CompleteWord} {
		d.SubscribeFunc(et, func(e event.Event) { log.types = append(log.types, e.Type) })
	}
	d.SubscribeFunc(event.TextChanged, func(e event.Event) {
		log.markups = append(log.markups, e.Data.(event.TextPayload).Markup)
	})
	return NewTracker(d, DefaultPalette()), log
}

func (l *eventLog) count(et event.EventType) int {
	n := 0
	for _, t := range l.types {
		if t == et {
			n++
		}
	}
	return n
}

func TestMatchingIsDeterministic(t *testing.T) {
	tr, log := newTracker()
	tr.Reset("CAT")

	wantPrefixes := []string{"C", "CA", "CAT"}
	for i, c := range "CAT" {
		if !tr.Consume(c) {
			t.Fatalf("Expected %c to be accepted", c)
		}
		r := tr.Round()
		if r.Completed != wantPrefixes[i] {
			t.Errorf("Expected prefix %q, got %q", wantPrefixes[i], r.Completed)
		}
		completes := log.count(event.CompleteWord)
		if i < 2 && completes != 0 {
			t.Errorf("CompleteWord fired early after %d letters", i+1)
		}
	}

	if n := log.count(event.CompleteWord); n != 1 {
		t.Errorf("Expected CompleteWord once, got %d", n)
	}
	if n := log.count(event.CorrectLetter); n != 3 {
		t.Errorf("Expected 3 CorrectLetter events, got %d", n)
	}
	if tr.State() != Complete || !tr.WordComplete() {
		t.Errorf("Expected Complete state, got %v", tr.State())
	}
}

func TestMismatchLeavesWordUnchanged(t *testing.T) {
	tr, log := newTracker()
	tr.Reset("CAT")

	if tr.Consume('X') {
		t.Fatalf("Expected X to be rejected")
	}
	r := tr.Round()
	if r.Completed != "" || r.Remaining != "CAT" {
		t.Errorf("Expected (\"\", \"CAT\"), got (%q, %q)", r.Completed, r.Remaining)
	}
	if log.count(event.IncorrectLetter) != 1 {
		t.Errorf("Expected one IncorrectLetter")
	}
	if tr.State() != Empty {
		t.Errorf("Expected Empty state, got %v", tr.State())
	}
}

func TestCaseSensitive(t *testing.T) {
	tr, _ := newTracker()
	tr.Reset("Cat")
	if tr.Consume('c') {
		t.Errorf("Expected lowercase c not to match C")
	}
}

func TestInputAfterCompletionIsMismatch(t *testing.T) {
	tr, log := newTracker()
	tr.Reset("ox")
	tr.Consume('o')
	tr.Consume('x')
	tr.Consume('x')

	if log.count(event.CompleteWord) != 1 {
		t.Errorf("Expected CompleteWord exactly once, got %d", log.count(event.CompleteWord))
	}
	if log.count(event.IncorrectLetter) != 1 {
		t.Errorf("Expected trailing rune to be a mismatch")
	}
}

func TestMultiByteRunes(t *testing.T) {
	tr, _ := newTracker()
	tr.Reset("çé")
	if !tr.Consume('ç') || !tr.Consume('é') {
		t.Fatalf("Expected multi-byte runes to match")
	}
	if !tr.WordComplete() {
		t.Errorf("Expected word complete")
	}
}

func TestMarkup(t *testing.T) {
	tr, log := newTracker()
	tr.Reset("CAT")
	if got, want := log.markups[0], "<color=#ffffff>CAT</color>"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	tr.Consume('C')
	if got, want := tr.Markup(), "<color=#ffff00>C</color><color=#ffffff>AT</color>"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	tr.Consume('A')
	tr.Consume('T')
	if got, want := tr.Markup(), "<color=#00ff00>CAT</color>"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if last := log.markups[len(log.markups)-1]; last != tr.Markup() {
		t.Errorf("Expected last TextChanged to carry the finished markup, got %q", last)
	}
}

func TestCourseFlagIsIdempotent(t *testing.T) {
	tr, _ := newTracker()
	tr.Reset("CAT")
	if !tr.MarkCourseComplete() {
		t.Errorf("Expected first mark to report true")
	}
	if tr.MarkCourseComplete() {
		t.Errorf("Expected second mark to report false")
	}
	tr.Reset("DOG")
	if tr.CourseComplete() {
		t.Errorf("Expected Reset to clear the course flag")
	}
}
