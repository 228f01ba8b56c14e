package ai

import (
	"context"
	"fmt"
	"log/slog"

	"greedy-snake/game"

	"golang.org/x/exp/rand"
)

const (
	DefaultMaxSteps = 2000
	progressEvery   = 100
)

// Report summarises a training run
type Report struct {
	Episodes int
	Steps    int
	Best     int
	Average  float64
}

// Trainer plays headless games to fill the agent's Q-table
type Trainer struct {
	Agent    *Agent
	MaxSteps int // per episode, so a looping snake can't stall training

	rng *rand.Rand
	log *slog.Logger
}

func NewTrainer(agent *Agent, rng *rand.Rand, log *slog.Logger) *Trainer {
	return &Trainer{Agent: agent, MaxSteps: DefaultMaxSteps, rng: rng, log: log}
}

// Train plays the given number of episodes
func (t *Trainer) Train(ctx context.Context, episodes int) (Report, error) {
	var report Report
	session, err := game.NewSession(
		game.WithRand(t.rng),
		game.WithLogger(slog.New(slog.DiscardHandler)),
	)
	if err != nil {
		return report, fmt.Errorf("training session: %w", err)
	}

	total := 0
	for ep := 0; ep < episodes; ep++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if ep > 0 {
			if err := session.Reset(); err != nil {
				return report, err
			}
		}
		steps, err := t.episode(session)
		if err != nil {
			return report, fmt.Errorf("episode %d: %w", ep, err)
		}
		t.Agent.EndEpisode()

		report.Episodes++
		report.Steps += steps
		total += session.Score
		report.Best = max(report.Best, session.Score)
		report.Average = float64(total) / float64(report.Episodes)

		if report.Episodes%progressEvery == 0 {
			t.log.Debug("training progress",
				"episode", report.Episodes,
				"best", report.Best,
				"average", report.Average,
				"epsilon", t.Agent.Epsilon,
			)
		}
	}
	t.log.Info("training finished",
		"episodes", report.Episodes,
		"steps", report.Steps,
		"best", report.Best,
		"average", report.Average,
		"states", len(t.Agent.QTable),
	)
	return report, nil
}

func (t *Trainer) episode(s *game.Session) (int, error) {
	l := learner{agent: t.Agent}
	for steps := 0; steps < t.MaxSteps; steps++ {
		st := l.observe(s)
		if !s.Alive() {
			return steps, nil
		}
		if err := s.Handle(game.Turn(l.act(s, st))); err != nil {
			return steps, err
		}
		if err := s.Step(); err != nil {
			return steps, err
		}
	}
	l.observe(s)
	return t.MaxSteps, nil
}
