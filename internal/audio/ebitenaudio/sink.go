// Package ebitenaudio plays cues through ebiten's audio context.
package ebitenaudio

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"

	tbaudio "go-typeball/internal/audio"
)

const sampleRate = 44100

// Sink keeps rendered PCM per tone so each cue is synthesised once.
type Sink struct {
	context *audio.Context
	cache   map[tbaudio.Tone][]byte
	music   *audio.Player
}

// NewSink creates the process-wide audio context; ebiten allows only one.
func NewSink() *Sink {
	return &Sink{
		context: audio.NewContext(sampleRate),
		cache:   make(map[tbaudio.Tone][]byte),
	}
}

func (s *Sink) Play(t tbaudio.Tone) {
	pcm, ok := s.cache[t]
	if !ok {
		pcm = tbaudio.PCM16(t, sampleRate)
		s.cache[t] = pcm
	}
	s.context.NewPlayerFromBytes(pcm).Play()
}

// Loop plays phrase on repeat through an infinite loop stream, replacing
// any loop already running.
func (s *Sink) Loop(phrase []tbaudio.Tone) {
	s.StopLoop()
	pcm := tbaudio.PhrasePCM16(phrase, sampleRate)
	if len(pcm) == 0 {
		return
	}
	stream := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := s.context.NewPlayer(stream)
	if err != nil {
		return
	}
	player.Play()
	s.music = player
}

func (s *Sink) StopLoop() {
	if s.music == nil {
		return
	}
	s.music.Pause()
	s.music.Close()
	s.music = nil
}
