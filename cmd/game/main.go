// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"go-typeball/internal/assets"
	"go-typeball/internal/audio/ebitenaudio"
	"go-typeball/internal/config"
	"go-typeball/internal/state"
	"go-typeball/internal/utils"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDeltaTime   float64
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDeltaTime {
		deltaTime = a.maxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "settings file (default typeball.toml)")
	skipMenu := flag.Bool("play", false, "start straight into a game")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load settings")
	}
	logger := utils.NewLogger(settings.LogLevel, os.Stderr)

	content, err := (&assets.Manager{
		WordBankPath: settings.WordBankPath,
		CoursesPath:  settings.CoursesPath,
		Log:          logger,
	}).Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load content")
	}

	session := state.NewSession(settings, content, logger, nil)
	if !*mute {
		session.Sink = ebitenaudio.NewSink()
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		ps, err := state.NewPlayState(sm, session)
		if err != nil {
			logger.Fatal().Err(err).Msg("start game")
		}
		sm.SetState(ps)
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDeltaTime:   settings.MaxDeltaTime,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Typeball")
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game loop")
	}
}
