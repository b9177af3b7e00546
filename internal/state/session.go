// internal/state/session.go
package state

import (
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-typeball/internal/app"
	"go-typeball/internal/assets"
	"go-typeball/internal/audio"
	"go-typeball/internal/config"
	"go-typeball/internal/event"
	"go-typeball/internal/utils"
)

// Session is what survives a restart: settings, loaded content and the
// audio sink. Every play-through gets a fresh Game.
type Session struct {
	Settings config.Settings
	Content  *assets.Content
	Log      zerolog.Logger
	Sink     audio.Sink // nil plays nothing
	FontFace font.Face

	music *audio.Music // outlives play-throughs so menu trips do not restart it
}

func NewSession(settings config.Settings, content *assets.Content, log zerolog.Logger, sink audio.Sink) *Session {
	return &Session{
		Settings: settings,
		Content:  content,
		Log:      log,
		Sink:     sink,
		FontFace: basicfont.Face7x13,
	}
}

// NewGame starts a play-through reading input from src.
func (s *Session) NewGame(src *KeyboardSource) (*app.Game, error) {
	events := event.NewDispatcher()
	rng := utils.NewPRNGService(s.Settings.Seed)
	if s.Sink != nil {
		audio.NewListener(s.Sink, rng, s.Log).Attach(events)
	}
	if l, ok := s.Sink.(audio.Looper); ok {
		if s.music == nil {
			s.music = audio.NewMusic(l)
		}
		s.music.Attach(events)
	}
	return app.New(app.Options{
		Settings: s.Settings,
		Content:  s.Content,
		Input:    src,
		Log:      s.Log,
		Events:   events,
		Rng:      rng,
	})
}
