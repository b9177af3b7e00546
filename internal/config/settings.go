// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"

	"go-typeball/internal/types"
)

// Settings are the tunables read at startup.
type Settings struct {
	// Probability that a round is played with the Switched scheme.
	SwitchedControlsRate float64 `toml:"switched_controls_rate"`
	BallSpeed            float64 `toml:"ball_speed"` // world units per second at full axis
	EasyMaxLength        int     `toml:"easy_max_length"`
	MediumMaxLength      int     `toml:"medium_max_length"`
	RoundsPerDifficulty  int     `toml:"rounds_per_difficulty"`
	// A wrong letter ends the game instead of only being signalled.
	StrictTyping bool    `toml:"strict_typing"`
	FixedStep    float64 `toml:"fixed_step"`
	MaxDeltaTime float64 `toml:"max_delta_time"`
	Seed         int64   `toml:"seed"`
	LogLevel     string  `toml:"log_level"`
	WordBankPath string  `toml:"word_bank"`
	CoursesPath  string  `toml:"courses"`

	Colors Colors `toml:"colors"`
}

// Colors are "#rrggbb" strings. An empty NotGoal keeps the non-goal gate invisible.
type Colors struct {
	Completed string `toml:"completed"`
	Remaining string `toml:"remaining"`
	Finished  string `toml:"finished"`
	Goal      string `toml:"goal"`
	NotGoal   string `toml:"not_goal"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		SwitchedControlsRate: 0.5,
		BallSpeed:            10,
		EasyMaxLength:        5,
		MediumMaxLength:      8,
		RoundsPerDifficulty:  3,
		FixedStep:            0.02,
		MaxDeltaTime:         MaxDeltaTime,
		LogLevel:             "info",
		Colors: Colors{
			Completed: "#ffff00",
			Remaining: "#ffffff",
			Finished:  "#00ff00",
			Goal:      "#32cd32",
			NotGoal:   "",
		},
	}
}

// Load builds settings from defaults, then the TOML file at path (a missing
// file is fine when path came from the default), then the environment.
// A .env file in the working directory is loaded first if present.
func Load(path string) (Settings, error) {
	s := Default()
	_ = godotenv.Load()

	explicit := path != ""
	if env := os.Getenv("TYPEBALL_CONFIG"); env != "" {
		path, explicit = env, true
	}
	if path == "" {
		path = "typeball.toml"
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return s, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	if err := s.applyEnv(); err != nil {
		return s, err
	}
	return s, s.Validate()
}

func (s *Settings) applyEnv() error {
	if v, ok := os.LookupEnv("TYPEBALL_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return &types.ConfigurationError{Field: "TYPEBALL_SEED", Reason: err.Error()}
		}
		s.Seed = n
	}
	if v, ok := os.LookupEnv("TYPEBALL_STRICT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &types.ConfigurationError{Field: "TYPEBALL_STRICT", Reason: err.Error()}
		}
		s.StrictTyping = b
	}
	if v, ok := os.LookupEnv("TYPEBALL_SWITCH_RATE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &types.ConfigurationError{Field: "TYPEBALL_SWITCH_RATE", Reason: err.Error()}
		}
		s.SwitchedControlsRate = f
	}
	if v, ok := os.LookupEnv("TYPEBALL_BALL_SPEED"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &types.ConfigurationError{Field: "TYPEBALL_BALL_SPEED", Reason: err.Error()}
		}
		s.BallSpeed = f
	}
	if v := os.Getenv("TYPEBALL_LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv("TYPEBALL_WORDS"); v != "" {
		s.WordBankPath = v
	}
	if v := os.Getenv("TYPEBALL_COURSES"); v != "" {
		s.CoursesPath = v
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.SwitchedControlsRate < 0 || s.SwitchedControlsRate > 1:
		return &types.ConfigurationError{Field: "switched_controls_rate", Reason: "must be within [0, 1]"}
	case s.BallSpeed <= 0:
		return &types.ConfigurationError{Field: "ball_speed", Reason: "must be positive"}
	case s.FixedStep <= 0:
		return &types.ConfigurationError{Field: "fixed_step", Reason: "must be positive"}
	case s.MaxDeltaTime < s.FixedStep:
		return &types.ConfigurationError{Field: "max_delta_time", Reason: "must be at least fixed_step"}
	case s.EasyMaxLength <= 0 || s.MediumMaxLength < s.EasyMaxLength:
		return &types.ConfigurationError{Field: "easy_max_length", Reason: "need 0 < easy_max_length <= medium_max_length"}
	case s.RoundsPerDifficulty < 0:
		return &types.ConfigurationError{Field: "rounds_per_difficulty", Reason: "must not be negative"}
	}
	for name, hex := range map[string]string{
		"colors.completed": s.Colors.Completed,
		"colors.remaining": s.Colors.Remaining,
		"colors.finished":  s.Colors.Finished,
		"colors.goal":      s.Colors.Goal,
		"colors.not_goal":  s.Colors.NotGoal,
	} {
		if hex == "" && name == "colors.not_goal" {
			continue
		}
		if _, err := colorful.Hex(hex); err != nil {
			return &types.ConfigurationError{Field: name, Reason: err.Error()}
		}
	}
	return nil
}

// MaxLength is the word length limit for d; 0 means unlimited.
func (s Settings) MaxLength(d types.Difficulty) int {
	switch d {
	case types.Easy:
		return s.EasyMaxLength
	case types.Medium:
		return s.MediumMaxLength
	default:
		return 0
	}
}
