// Package progress tracks how far the current round has got: the typed part
// of the word and whether the course has been finished.
package progress

import (
	"unicode/utf8"

	"go-typeball/internal/event"
)

// WordState is the matching state of the current word.
type WordState int

const (
	Empty WordState = iota
	InProgress
	Complete
)

func (s WordState) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Complete:
		return "complete"
	default:
		return "empty"
	}
}

// Round is a snapshot of the current round.
type Round struct {
	Word           string
	Completed      string
	Remaining      string
	WordComplete   bool
	CourseComplete bool
}

// Tracker matches typed runes against the word and raises
// CorrectLetter, IncorrectLetter, CompleteWord and TextChanged.
type Tracker struct {
	events  *event.Dispatcher
	palette Palette

	word           string
	completed      string
	remaining      string
	state          WordState
	courseComplete bool
}

func NewTracker(events *event.Dispatcher, palette Palette) *Tracker {
	return &Tracker{events: events, palette: palette}
}

// Reset starts a new round with word.
func (t *Tracker) Reset(word string) {
	t.word = word
	t.completed = ""
	t.remaining = word
	t.state = Empty
	t.courseComplete = false
	if word == "" {
		t.state = Complete
	}
	t.events.Emit(event.TextChanged, event.TextPayload{Markup: t.Markup()})
}

// Consume checks c against the next letter. Accepted letters are never
// given back. Anything typed after the word is complete is a mismatch.
func (t *Tracker) Consume(c rune) bool {
	index := utf8.RuneCountInString(t.completed)
	next, size := utf8.DecodeRuneInString(t.remaining)
	if t.remaining == "" || next != c {
		t.events.Emit(event.IncorrectLetter, event.LetterPayload{Char: c, Index: index})
		return false
	}

	t.completed += t.remaining[:size]
	t.remaining = t.remaining[size:]
	t.state = InProgress
	if t.remaining == "" {
		t.state = Complete
	}
	t.events.Emit(event.TextChanged, event.TextPayload{Markup: t.Markup()})
	t.events.Emit(event.CorrectLetter, event.LetterPayload{Char: c, Index: index})

	if t.state == Complete {
		t.events.Emit(event.CompleteWord, event.WordPayload{Word: t.word})
	}
	return true
}

// MarkCourseComplete sets the course flag. Only the first call in a round
// returns true.
func (t *Tracker) MarkCourseComplete() bool {
	if t.courseComplete {
		return false
	}
	t.courseComplete = true
	return true
}

func (t *Tracker) State() WordState     { return t.state }
func (t *Tracker) WordComplete() bool   { return t.state == Complete }
func (t *Tracker) CourseComplete() bool { return t.courseComplete }

func (t *Tracker) Round() Round {
	return Round{
		Word:           t.word,
		Completed:      t.completed,
		Remaining:      t.remaining,
		WordComplete:   t.WordComplete(),
		CourseComplete: t.courseComplete,
	}
}
