// Package audio turns game events into short synthesised cues.
// Sinks that actually make sound live in the ebitenaudio and beepaudio
// subpackages so a frontend only links the backend it uses.
package audio

import (
	"time"

	"github.com/rs/zerolog"

	"go-typeball/internal/event"
)

// Cue identifies a sound.
type Cue int

const (
	CueKeyboard Cue = iota
	CueIncorrect
	CueSwitch
	CueRoundComplete
	CueFail
)

func (c Cue) String() string {
	switch c {
	case CueKeyboard:
		return "keyboard"
	case CueIncorrect:
		return "incorrect"
	case CueSwitch:
		return "switch"
	case CueRoundComplete:
		return "round_complete"
	case CueFail:
		return "fail"
	}
	return "unknown"
}

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
)

// Tone is one synthesised note.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Volume   float64 // 0..1
}

// Variants of each cue; one is picked at random per play so repeated
// keystrokes do not sound identical.
var cueTones = map[Cue][]Tone{
	CueKeyboard: {
		{Freq: 880, Duration: 30 * time.Millisecond, Wave: Square, Volume: 0.15},
		{Freq: 932, Duration: 30 * time.Millisecond, Wave: Square, Volume: 0.15},
		{Freq: 988, Duration: 30 * time.Millisecond, Wave: Square, Volume: 0.15},
	},
	CueIncorrect: {
		{Freq: 140, Duration: 120 * time.Millisecond, Wave: Square, Volume: 0.3},
		{Freq: 120, Duration: 120 * time.Millisecond, Wave: Square, Volume: 0.3},
	},
	CueSwitch:        {{Freq: 660, Duration: 90 * time.Millisecond, Wave: Sine, Volume: 0.4}},
	CueRoundComplete: {{Freq: 1320, Duration: 180 * time.Millisecond, Wave: Sine, Volume: 0.4}},
	CueFail:          {{Freq: 220, Duration: 400 * time.Millisecond, Wave: Sine, Volume: 0.5}},
}

// Tones returns the variants of c.
func Tones(c Cue) []Tone { return cueTones[c] }

// Sink plays tones. Play must not block the game loop.
type Sink interface {
	Play(t Tone)
}

// Rand picks a variant; *utils.PRNGService satisfies it.
type Rand interface {
	Intn(n int) int
}

// CueFor maps an event to its cue.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.CorrectLetter:
		return CueKeyboard, true
	case event.IncorrectLetter:
		return CueIncorrect, true
	case event.ControlsSwitched:
		return CueSwitch, true
	case event.RoundCompleted:
		return CueRoundComplete, true
	case event.GameOver:
		return CueFail, true
	}
	return 0, false
}

// Listener plays the cue for every event it is subscribed to.
type Listener struct {
	sink  Sink
	rng   Rand
	log   zerolog.Logger
	Muted bool
}

func NewListener(sink Sink, rng Rand, log zerolog.Logger) *Listener {
	return &Listener{sink: sink, rng: rng, log: log}
}

// Attach subscribes the listener to every event that has a cue.
func (l *Listener) Attach(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.CorrectLetter,
		event.IncorrectLetter,
		event.ControlsSwitched,
		event.RoundCompleted,
		event.GameOver,
	} {
		d.Subscribe(t, l)
	}
}

func (l *Listener) OnEvent(e event.Event) {
	if l.Muted || l.sink == nil {
		return
	}
	cue, ok := CueFor(e)
	if !ok {
		return
	}
	tones := Tones(cue)
	if len(tones) == 0 {
		return
	}
	tone := tones[0]
	if len(tones) > 1 && l.rng != nil {
		tone = tones[l.rng.Intn(len(tones))]
	}
	l.log.Trace().Stringer("cue", cue).Float64("freq", tone.Freq).Msg("play")
	l.sink.Play(tone)
}
