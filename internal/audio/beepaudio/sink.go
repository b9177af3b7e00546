// Package beepaudio plays cues through the system speaker with beep.
package beepaudio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-typeball/internal/audio"
)

const sampleRate = beep.SampleRate(48000)

// Sink mixes every cue into one speaker stream.
type Sink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

func NewSink() *Sink {
	return &Sink{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Calling it twice is harmless.
func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything still playing.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.music = nil
	s.initialized = false
}

// Loop plays phrase on repeat, replacing any loop already running.
func (s *Sink) Loop(phrase []audio.Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	samples := audio.PhraseSamples(phrase, int(sampleRate))
	if len(samples) == 0 {
		return
	}
	ctrl := &beep.Ctrl{Streamer: loop(samples)}
	speaker.Lock()
	if s.music != nil {
		s.music.Streamer = nil
	}
	s.mixer.Add(ctrl)
	speaker.Unlock()
	s.music = ctrl
}

// StopLoop ends the running loop. The mixer drops it on the next buffer.
func (s *Sink) StopLoop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Streamer = nil
	speaker.Unlock()
	s.music = nil
}

func (s *Sink) Play(t audio.Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	st, err := streamer(t)
	if err != nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func streamer(t audio.Tone) (beep.Streamer, error) {
	n := sampleRate.N(t.Duration)
	if t.Wave == audio.Sine {
		tone, err := generators.SineTone(sampleRate, t.Freq)
		if err != nil {
			return nil, err
		}
		return volume(beep.Take(n, tone), t.Volume), nil
	}

	return once(audio.Samples(t, int(sampleRate))), nil
}

// once streams mono samples to both channels and then ends.
func once(samples []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		i := 0
		for ; i < len(out) && pos < len(samples); i++ {
			out[i][0] = samples[pos]
			out[i][1] = samples[pos]
			pos++
		}
		return i, true
	})
}

// loop streams mono samples to both channels forever.
func loop(samples []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		for i := range out {
			out[i][0] = samples[pos]
			out[i][1] = samples[pos]
			pos = (pos + 1) % len(samples)
		}
		return len(out), true
	})
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}
