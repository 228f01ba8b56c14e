package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"greedy-snake/audio"
)

const (
	envFPS      = "SNAKE_FPS"
	envLogLevel = "SNAKE_LOG_LEVEL"
)

// Config is the command line configuration. Environment variables set the
// defaults and flags override them.
type Config struct {
	FPS       int
	Term      bool
	Mute      bool
	Volume    int // percent
	Seed      uint64
	Autopilot bool
	Train     int
	LogLevel  string
	LogFile   string
}

func DefaultConfig() Config {
	return Config{
		FPS:      5,
		Volume:   50,
		LogLevel: "info",
	}
}

// parseConfig reads the environment through getenv, then args
func parseConfig(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(envFPS); v != "" {
		if fps, err := strconv.Atoi(v); err == nil {
			cfg.FPS = fps
		}
	}
	if v := getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	acfg := audio.LoadConfig(getenv)
	cfg.Mute = !acfg.Enabled
	cfg.Volume = int(acfg.MasterVolume*100 + 0.5)

	fs := flag.NewFlagSet("greedy-snake", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Moves per second")
	fs.BoolVar(&cfg.Term, "term", cfg.Term, "Play in the terminal instead of a window")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound")
	fs.IntVar(&cfg.Volume, "volume", cfg.Volume, "Sound volume, 0-100")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 picks one from the clock)")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "Let the Q-learning agent play")
	fs.IntVar(&cfg.Train, "train", cfg.Train, "Headless training episodes to run first")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to this file")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if cfg.FPS <= 0 {
		return cfg, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Train < 0 {
		return cfg, fmt.Errorf("train must not be negative, got %d", cfg.Train)
	}
	if _, err := cfg.level(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func (c Config) audioConfig() *audio.Config {
	acfg := audio.DefaultConfig()
	acfg.Enabled = !c.Mute
	acfg.SetVolume(c.Volume)
	return acfg
}
