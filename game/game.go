package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"greedy-snake/game/entity"
	"greedy-snake/game/manager"
	"greedy-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// maxPendingTurns caps how many direction keys are buffered between ticks
const maxPendingTurns = 3

// Listener is notified of things worth a sound or a log line
type Listener interface {
	FoodEaten(score int)
	SnakeDied(score int, cause types.CollisionType)
	SessionReset()
}

// Session owns all mutable state of one game window: the current run plus
// the score history of every run before it.
type Session struct {
	UUID      string
	Wall      entity.Wall
	Snake     *entity.Snake
	Food      *entity.Food
	Score     int
	StartTime time.Time
	Scores    *manager.ScoreBoard

	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	turns        []types.Direction
	recorded     bool
	listener     Listener
	log          *slog.Logger
}

type Option func(*Session)

// WithRand sets the random source used for food placement
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.foodMgr = manager.NewFoodManager(types.DefaultGrid, rng)
	}
}

func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listener = l
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithHistorySize sets how many scores the session remembers
func WithHistorySize(n int) Option {
	return func(s *Session) {
		s.Scores = manager.NewScoreBoard(n)
	}
}

func NewSession(opts ...Option) (*Session, error) {
	wall := entity.NewWall()
	s := &Session{
		UUID:         uuid.New().String(),
		Wall:         wall,
		Scores:       manager.NewScoreBoard(manager.DefaultHistorySize),
		collisionMgr: manager.NewCollisionManager(wall),
		listener:     nopListener{},
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.foodMgr == nil {
		src := rand.NewSource(uint64(time.Now().UnixNano()))
		s.foodMgr = manager.NewFoodManager(types.DefaultGrid, rand.New(src))
	}
	s.log = s.log.With("session", s.UUID)

	if err := s.newRun(); err != nil {
		return nil, err
	}
	s.log.Info("session started")
	return s, nil
}

// Reset throws away the current run and starts a fresh snake. A run that
// is abandoned while alive is not recorded.
func (s *Session) Reset() error {
	if err := s.newRun(); err != nil {
		return err
	}
	s.log.Info("session reset", "games", s.Scores.GamesPlayed(), "best", s.Scores.Best())
	s.listener.SessionReset()
	return nil
}

func (s *Session) newRun() error {
	snake := entity.NewSnake()
	food, err := s.foodMgr.Spawn(snake.Occupied())
	if err != nil {
		return fmt.Errorf("spawn food: %w", err)
	}
	s.Snake = snake
	s.Food = food
	s.Score = 0
	s.StartTime = time.Now()
	s.turns = s.turns[:0]
	s.recorded = false
	return nil
}

// Alive reports whether the current run is still going
func (s *Session) Alive() bool {
	return s.Snake.Alive()
}

// Handle applies one input command. Direction changes are buffered and
// consumed one per tick; they are dropped while the snake is dead.
func (s *Session) Handle(cmd Command) error {
	switch cmd.Kind {
	case CommandTurn:
		if s.Alive() && len(s.turns) < maxPendingTurns {
			s.turns = append(s.turns, cmd.Dir)
		}
	case CommandRestart:
		return s.Reset()
	}
	return nil
}

// Tick runs one frame: the current state is drawn first, then the snake
// moves and collisions and food are resolved.
func (s *Session) Tick(surface entity.Surface) error {
	if !s.Alive() {
		s.drawBoard(surface)
		s.drawGameOver(surface)
		return nil
	}

	s.drawBoard(surface)
	return s.Step()
}

// Step advances the simulation by one move without drawing anything: the
// next buffered turn is applied, the snake moves, then wall, self and food
// checks run in that order.
func (s *Session) Step() error {
	if !s.Alive() {
		return nil
	}
	s.applyTurn()
	s.Snake.Move()

	if cause := s.collisionMgr.Resolve(s.Snake); cause != types.NoCollision {
		s.finish(cause)
		return nil
	}

	if s.collisionMgr.IsFoodCollision(s.Snake, s.Food) {
		s.Score++
		s.log.Debug("food eaten", "score", s.Score, "at", s.Food.Position())
		s.listener.FoodEaten(s.Score)

		// The tail stays on the next move, so it still counts as occupied.
		food, err := s.foodMgr.Spawn(s.Snake.Occupied())
		if errors.Is(err, manager.ErrBoardFull) {
			s.Snake.Stop()
			s.finish(types.NoCollision)
			return nil
		}
		if err != nil {
			return fmt.Errorf("respawn food: %w", err)
		}
		s.Food = food
	}
	return nil
}

// applyTurn takes buffered turns until one is accepted by the snake
func (s *Session) applyTurn() bool {
	for len(s.turns) > 0 {
		dir := s.turns[0]
		s.turns = s.turns[1:]
		if s.Snake.ChangeDirection(dir) {
			return true
		}
	}
	return false
}

func (s *Session) finish(cause types.CollisionType) {
	if s.recorded {
		return
	}
	s.recorded = true
	s.turns = s.turns[:0]
	s.Scores.Record(s.Score)
	s.log.Info("snake died",
		"cause", cause.String(),
		"score", s.Score,
		"length", s.Snake.Length(),
		"duration", time.Since(s.StartTime).Round(time.Millisecond),
	)
	s.listener.SnakeDied(s.Score, cause)
}

type nopListener struct{}

func (nopListener) FoodEaten(int)                      {}
func (nopListener) SnakeDied(int, types.CollisionType) {}
func (nopListener) SessionReset()                      {}
