package ai

import (
	"greedy-snake/game"
	"greedy-snake/game/types"
)

// learner remembers the last decision so the next observation can score it
type learner struct {
	agent  *Agent
	state  State
	action types.Direction
	score  int
	acted  bool
}

// observe reads the session and, if a decision is pending, rewards it
func (l *learner) observe(s *game.Session) State {
	next := Observe(s)
	if l.acted {
		alive := s.Alive()
		r := reward(l.state, next, l.score, s.Score, alive, s.Snake.LastCollision())
		l.agent.Update(l.state, l.action, r, next, !alive)
		l.acted = false
	}
	return next
}

func (l *learner) act(s *game.Session, st State) types.Direction {
	dir := l.agent.Action(st)
	l.state, l.action, l.score, l.acted = st, dir, s.Score, true
	return dir
}

func (l *learner) forget() {
	l.acted = false
}
