// cmd/typeball-term/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"go-typeball/internal/assets"
	"go-typeball/internal/audio/beepaudio"
	"go-typeball/internal/config"
	"go-typeball/internal/term"
	"go-typeball/internal/utils"
)

func main() {
	configPath := flag.String("config", "", "settings file (default typeball.toml)")
	logPath := flag.String("log", "typeball.log", "log file; the terminal is busy drawing")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load settings")
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal().Err(err).Str("path", *logPath).Msg("open log file")
	}
	defer logFile.Close()
	logger := utils.NewLogger(settings.LogLevel, logFile)

	content, err := (&assets.Manager{
		WordBankPath: settings.WordBankPath,
		CoursesPath:  settings.CoursesPath,
		Log:          logger,
	}).Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load content")
	}

	opts := term.Options{Settings: settings, Content: content, Log: logger}
	if !*mute {
		sink := beepaudio.NewSink()
		if err := sink.Init(); err != nil {
			logger.Warn().Err(err).Msg("audio disabled")
		} else {
			defer sink.Close()
			opts.Sink = sink
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("open terminal")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("init terminal")
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f, err := term.New(screen, opts)
	if err == nil {
		err = f.Run(ctx)
	}
	screen.Fini()
	if err != nil {
		logger.Error().Err(err).Msg("game stopped")
		log.Fatal().Err(err).Msg("game stopped")
	}
}
