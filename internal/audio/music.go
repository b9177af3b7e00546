// internal/audio/music.go
package audio

import (
	"time"

	"go-typeball/internal/event"
)

const themeNote = 220 * time.Millisecond

// Theme is the background phrase looped during play. It sits well under
// the cues so typing feedback stays audible.
var Theme = []Tone{
	{Freq: 261.63, Duration: themeNote, Wave: Sine, Volume: 0.08},
	{Freq: 329.63, Duration: themeNote, Wave: Sine, Volume: 0.08},
	{Freq: 392.00, Duration: themeNote, Wave: Sine, Volume: 0.08},
	{Freq: 523.25, Duration: themeNote, Wave: Sine, Volume: 0.08},
	{Freq: 392.00, Duration: themeNote, Wave: Sine, Volume: 0.08},
	{Freq: 329.63, Duration: themeNote, Wave: Sine, Volume: 0.08},
	{Freq: 293.66, Duration: themeNote, Wave: Sine, Volume: 0.08},
	{Freq: 246.94, Duration: themeNote, Wave: Sine, Volume: 0.08},
}

// Looper plays a phrase on repeat until StopLoop. Starting a new loop
// replaces the old one.
type Looper interface {
	Loop(phrase []Tone)
	StopLoop()
}

// Music loops Theme from the first round of a play-through until game over.
type Music struct {
	looper  Looper
	playing bool
	Muted   bool
}

func NewMusic(l Looper) *Music {
	return &Music{looper: l}
}

// Attach subscribes to the events that start and stop the loop.
func (m *Music) Attach(d *event.Dispatcher) {
	d.Subscribe(event.RoundStarted, m)
	d.Subscribe(event.GameOver, m)
}

func (m *Music) OnEvent(e event.Event) {
	switch e.Type {
	case event.RoundStarted:
		if m.playing || m.Muted {
			return
		}
		m.looper.Loop(Theme)
		m.playing = true
	case event.GameOver:
		m.Stop()
	}
}

// Stop ends the loop if it is playing.
func (m *Music) Stop() {
	if !m.playing {
		return
	}
	m.looper.StopLoop()
	m.playing = false
}

// Playing reports whether the loop is running.
func (m *Music) Playing() bool { return m.playing }
