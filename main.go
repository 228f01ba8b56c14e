package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greedy-snake/ai"
	"greedy-snake/audio"
	"greedy-snake/game"
	"greedy-snake/ui"
	"greedy-snake/ui/term"

	"github.com/joho/godotenv"
	"golang.org/x/exp/rand"
)

func main() {
	// SNAKE_* settings may also come from a .env file; real environment
	// variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("load .env", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Getenv, os.Stderr)
	stop()
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("greedy-snake failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, getenv func(string) string, stderr io.Writer) error {
	cfg, err := parseConfig(args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug("config", "fps", cfg.FPS, "term", cfg.Term, "autopilot", cfg.Autopilot, "train", cfg.Train, "seed", seed)

	// Separate streams so training does not change the food sequence.
	foodRand := rand.New(rand.NewSource(seed))
	agentRand := rand.New(rand.NewSource(seed ^ 0x9e3779b97f4a7c15))

	var agent *ai.Agent
	if cfg.Autopilot || cfg.Train > 0 {
		agent = ai.NewAgent(agentRand)
	}
	if cfg.Train > 0 {
		trainer := ai.NewTrainer(agent, agentRand, log)
		if _, err := trainer.Train(ctx, cfg.Train); err != nil {
			return fmt.Errorf("train: %w", err)
		}
		if !cfg.Autopilot {
			return nil
		}
	}

	player := audio.NewPlayer(cfg.audioConfig())
	if err := player.Initialize(); err != nil {
		log.Warn("audio disabled", "err", err)
	}
	log.Debug("audio", "enabled", player.Enabled())
	defer player.Close()

	session, err := game.NewSession(
		game.WithRand(foodRand),
		game.WithListener(soundListener{player: player, log: log}),
		game.WithLogger(log),
	)
	if err != nil {
		return err
	}

	var fe game.Frontend
	if cfg.Term {
		screen, err := term.NewScreen(cfg.FPS)
		if err != nil {
			return err
		}
		defer screen.Close()
		fe = screen
	} else {
		renderer := ui.NewRenderer(cfg.FPS)
		defer renderer.Close()
		fe = renderer
	}
	if cfg.Autopilot {
		fe = ai.NewPilot(agent, session, fe)
	}

	err = game.Run(ctx, session, fe)
	log.Info("session ended",
		"games", session.Scores.GamesPlayed(),
		"best", session.Scores.Best(),
		"average", session.Scores.Average(),
	)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
