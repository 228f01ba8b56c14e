package game

import (
	"context"

	"greedy-snake/game/entity"
)

// Frontend is a window or terminal the session is shown on. Poll must not
// block; EndFrame presents the frame and waits until the next tick is due.
type Frontend interface {
	Poll() []Command
	BeginFrame() entity.Surface
	EndFrame()
}

// Run drives the session at the frontend's fixed cadence until a quit
// command arrives or ctx is cancelled.
func Run(ctx context.Context, s *Session, fe Frontend) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for _, cmd := range fe.Poll() {
			if cmd.Kind == CommandQuit {
				return nil
			}
			if err := s.Handle(cmd); err != nil {
				return err
			}
		}

		surface := fe.BeginFrame()
		err := s.Tick(surface)
		fe.EndFrame()
		if err != nil {
			return err
		}
	}
}
