// Package ai drives the snake with a tabular Q-learning agent.
package ai

import (
	"math"

	"greedy-snake/game/types"

	"golang.org/x/exp/rand"
)

// Rewards
const (
	RewardFood    = 1.0
	RewardDeath   = -1.0
	RewardCloser  = 0.1
	RewardFarther = -0.15
)

// QTable stores the value of each direction for a state key
type QTable map[string][4]float64

// Agent is an epsilon-greedy Q-learning agent. It is not safe for
// concurrent use.
type Agent struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	MinEpsilon   float64
	EpsilonDecay float64
	Episodes     int

	rng *rand.Rand
}

func NewAgent(rng *rand.Rand) *Agent {
	return &Agent{
		QTable:       make(QTable),
		LearningRate: 0.5,
		Discount:     0.8,
		Epsilon:      0.9,
		MinEpsilon:   0.01,
		EpsilonDecay: 0.995,
		rng:          rng,
	}
}

// Action picks a direction for the state. The reverse of the current
// heading is never chosen since the snake would ignore it.
func (a *Agent) Action(s State) types.Direction {
	legal := legalMoves(s.Heading)
	if a.rng.Float64() < a.Epsilon {
		return legal[a.rng.Intn(len(legal))]
	}
	return a.bestAction(s.Key(), legal)
}

func legalMoves(heading types.Direction) []types.Direction {
	moves := make([]types.Direction, 0, 3)
	for _, d := range types.Directions {
		if d != heading.Reverse() {
			moves = append(moves, d)
		}
	}
	return moves
}

func (a *Agent) bestAction(key string, legal []types.Direction) types.Direction {
	q := a.QTable[key]
	best := legal[0]
	bestValue := math.Inf(-1)
	for _, d := range legal {
		if q[d] > bestValue {
			bestValue = q[d]
			best = d
		}
	}
	return best
}

// Update applies Q(s,a) += lr * (r + discount * max Q(s',·) - Q(s,a)).
// A terminal transition has no future value.
func (a *Agent) Update(s State, action types.Direction, reward float64, next State, terminal bool) {
	key := s.Key()
	q := a.QTable[key]

	target := reward
	if !terminal {
		target += a.Discount * a.maxValue(next.Key())
	}
	q[action] += a.LearningRate * (target - q[action])
	a.QTable[key] = q
}

func (a *Agent) maxValue(key string) float64 {
	q, ok := a.QTable[key]
	if !ok {
		return 0
	}
	maxQ := q[0]
	for _, v := range q[1:] {
		maxQ = math.Max(maxQ, v)
	}
	return maxQ
}

// EndEpisode decays the exploration rate
func (a *Agent) EndEpisode() {
	a.Episodes++
	a.Epsilon = math.Max(a.MinEpsilon, a.Epsilon*a.EpsilonDecay)
}

// reward scores the transition from prev to next
func reward(prev, next State, prevScore, score int, alive bool, cause types.CollisionType) float64 {
	switch {
	case !alive && cause != types.NoCollision:
		return RewardDeath
	case !alive:
		// The board filled up.
		return RewardFood
	case score > prevScore:
		return RewardFood
	case next.Distance < prev.Distance:
		return RewardCloser
	default:
		return RewardFarther
	}
}
