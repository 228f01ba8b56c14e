package ai

import (
	"greedy-snake/game"
	"greedy-snake/game/entity"
)

// DefaultRestartDelay is how many frames the game-over screen stays up
// before the pilot starts a new run
const DefaultRestartDelay = 10

// Pilot is a game.Frontend that plays by itself. It wraps a real frontend
// for drawing and for quit and restart keys; turn keys are ignored.
type Pilot struct {
	inner        game.Frontend
	session      *game.Session
	learner      learner
	restartDelay int
	deadFrames   int
}

func NewPilot(agent *Agent, session *game.Session, inner game.Frontend) *Pilot {
	return &Pilot{
		inner:        inner,
		session:      session,
		learner:      learner{agent: agent},
		restartDelay: DefaultRestartDelay,
	}
}

// SetRestartDelay sets the number of game-over frames before restarting
func (p *Pilot) SetRestartDelay(frames int) {
	p.restartDelay = frames
}

func (p *Pilot) Poll() []game.Command {
	var cmds []game.Command
	for _, cmd := range p.inner.Poll() {
		if cmd.Kind != game.CommandTurn {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) > 0 {
		p.learner.forget()
		p.deadFrames = 0
		return cmds
	}

	st := p.learner.observe(p.session)
	if !p.session.Alive() {
		p.deadFrames++
		if p.deadFrames == 1 {
			p.learner.agent.EndEpisode()
		}
		if p.deadFrames > p.restartDelay {
			p.deadFrames = 0
			return []game.Command{game.Restart()}
		}
		return nil
	}
	return []game.Command{game.Turn(p.learner.act(p.session, st))}
}

func (p *Pilot) BeginFrame() entity.Surface {
	return p.inner.BeginFrame()
}

func (p *Pilot) EndFrame() {
	p.inner.EndFrame()
}
