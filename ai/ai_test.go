package ai

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"greedy-snake/game"
	"greedy-snake/game/entity"
	"greedy-snake/game/types"

	"golang.org/x/exp/rand"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func newSession(t *testing.T, seed uint64) *game.Session {
	t.Helper()
	s, err := game.NewSession(
		game.WithRand(newRand(seed)),
		game.WithLogger(slog.New(slog.DiscardHandler)),
	)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func cells(cs ...[2]int) []types.Point {
	pts := make([]types.Point, len(cs))
	for i, c := range cs {
		pts[i] = types.Cell(c[0], c[1])
	}
	return pts
}

func TestObserve_Corner(t *testing.T) {
	s := newSession(t, 1)
	s.Snake = entity.NewSnakeFrom(cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}), types.Left)
	s.Food = entity.NewFood(types.Cell(3, 2))

	st := Observe(s)
	if st.FoodDir != [2]int{1, 1} {
		t.Fatalf("foodDir=%v want=[1 1]", st.FoodDir)
	}
	if want := [4]bool{true, true, false, true}; st.Danger != want {
		t.Fatalf("danger=%v want=%v", st.Danger, want)
	}
	if st.Distance != 5 {
		t.Fatalf("distance=%d want=5", st.Distance)
	}
	if got := st.Key(); got != "1,1|1101|3" {
		t.Fatalf("key=%q", got)
	}
}

func TestObserve_TailIsSafe(t *testing.T) {
	s := newSession(t, 1)
	s.Snake = entity.NewSnakeFrom(cells([2]int{1, 1}, [2]int{2, 1}, [2]int{2, 2}, [2]int{1, 2}), types.Left)
	s.Food = entity.NewFood(types.Cell(1, 1))

	st := Observe(s)
	if st.Danger[types.Down] {
		t.Fatal("the tail cell moves away and should not count as danger")
	}
	if !st.Danger[types.Right] {
		t.Fatal("the neck should count as danger")
	}
	if st.FoodDir != [2]int{0, 0} || st.Distance != 0 {
		t.Fatalf("foodDir=%v distance=%d", st.FoodDir, st.Distance)
	}
}

func TestAgentUpdate(t *testing.T) {
	a := NewAgent(newRand(1))
	s := State{FoodDir: [2]int{1, 0}, Heading: types.Left}
	next := State{FoodDir: [2]int{0, 1}, Heading: types.Up}

	a.Update(s, types.Up, 1, next, true)
	if got := a.QTable[s.Key()][types.Up]; got != 0.5 {
		t.Fatalf("terminal q=%v want=0.5", got)
	}

	a.QTable[next.Key()] = [4]float64{0, 2, 0, 0}
	a.Update(s, types.Right, 0, next, false)
	if got := a.QTable[s.Key()][types.Right]; math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("q=%v want=0.8", got)
	}
}

func TestAgentAction_Greedy(t *testing.T) {
	a := NewAgent(newRand(1))
	a.Epsilon = 0

	s := State{Heading: types.Right}
	a.QTable[s.Key()] = [4]float64{0, 1, 5, 0}
	if got := a.Action(s); got != types.Down {
		t.Fatalf("action=%v want=down", got)
	}

	// The best value is the reverse of the heading, which is not a legal move.
	s = State{Heading: types.Up}
	a.QTable[s.Key()] = [4]float64{0, 0, 5, 0}
	if got := a.Action(s); got == types.Down {
		t.Fatal("picked the reverse direction")
	}
}

func TestAgentAction_ExploreNeverReverses(t *testing.T) {
	a := NewAgent(newRand(7))
	a.Epsilon = 1
	seen := map[types.Direction]bool{}
	for i := 0; i < 300; i++ {
		d := a.Action(State{Heading: types.Left})
		if d == types.Right {
			t.Fatal("picked the reverse direction")
		}
		seen[d] = true
	}
	if len(seen) != 3 {
		t.Fatalf("explored %v, want all three legal moves", seen)
	}
}

func TestEndEpisode(t *testing.T) {
	a := NewAgent(newRand(1))
	a.Epsilon, a.EpsilonDecay, a.MinEpsilon = 0.5, 0.5, 0.2
	a.EndEpisode()
	if a.Epsilon != 0.25 || a.Episodes != 1 {
		t.Fatalf("epsilon=%v episodes=%d", a.Epsilon, a.Episodes)
	}
	a.EndEpisode()
	if a.Epsilon != 0.2 {
		t.Fatalf("epsilon=%v want clamp at 0.2", a.Epsilon)
	}
}

func TestReward(t *testing.T) {
	near, far := State{Distance: 2}, State{Distance: 4}
	tests := []struct {
		name       string
		prev, next State
		prevScore  int
		score      int
		alive      bool
		cause      types.CollisionType
		want       float64
	}{
		{"wall", far, near, 0, 0, false, types.WallCollision, RewardDeath},
		{"self", far, near, 0, 0, false, types.SelfCollision, RewardDeath},
		{"board full", far, near, 3, 4, false, types.NoCollision, RewardFood},
		{"ate", near, far, 1, 2, true, types.NoCollision, RewardFood},
		{"closer", far, near, 0, 0, true, types.NoCollision, RewardCloser},
		{"farther", near, far, 0, 0, true, types.NoCollision, RewardFarther},
	}
	for _, tt := range tests {
		got := reward(tt.prev, tt.next, tt.prevScore, tt.score, tt.alive, tt.cause)
		if got != tt.want {
			t.Errorf("%s: reward=%v want=%v", tt.name, got, tt.want)
		}
	}
}

type nopSurface struct{}

func (nopSurface) Clear(types.Color)                            {}
func (nopSurface) FillRect(types.Rect, types.Color)             {}
func (nopSurface) StrokeRect(types.Rect, int32, types.Color)    {}
func (nopSurface) FillCircle(types.Point, int32, types.Color)   {}
func (nopSurface) Text(string, types.Point, int32, types.Color) {}

// stubFrontend replays scripted input, then quits after quitAfter polls
type stubFrontend struct {
	script    [][]game.Command
	polls     int
	quitAfter int
}

func (f *stubFrontend) Poll() []game.Command {
	f.polls++
	if f.quitAfter > 0 && f.polls >= f.quitAfter {
		return []game.Command{game.Quit()}
	}
	if len(f.script) == 0 {
		return nil
	}
	cmds := f.script[0]
	f.script = f.script[1:]
	return cmds
}

func (f *stubFrontend) BeginFrame() entity.Surface { return nopSurface{} }
func (f *stubFrontend) EndFrame()                  {}

func TestPilot_TurnsWhileAlive(t *testing.T) {
	s := newSession(t, 3)
	agent := NewAgent(newRand(3))
	p := NewPilot(agent, s, &stubFrontend{})

	cmds := p.Poll()
	if len(cmds) != 1 || cmds[0].Kind != game.CommandTurn {
		t.Fatalf("cmds=%+v want one turn", cmds)
	}
	if cmds[0].Dir == types.Right {
		t.Fatal("pilot reversed into its own body")
	}
	if err := s.Handle(cmds[0]); err != nil {
		t.Fatal(err)
	}
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	p.Poll()
	if len(agent.QTable) == 0 {
		t.Fatal("the first move was not learned from")
	}
}

func TestPilot_RestartsAfterDelay(t *testing.T) {
	s := newSession(t, 3)
	s.Snake = entity.NewSnakeFrom(cells([2]int{0, 5}, [2]int{1, 5}, [2]int{2, 5}), types.Left)
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if s.Alive() {
		t.Fatal("snake should have hit the wall")
	}

	agent := NewAgent(newRand(3))
	p := NewPilot(agent, s, &stubFrontend{})
	p.SetRestartDelay(2)

	for i := 0; i < 2; i++ {
		if cmds := p.Poll(); len(cmds) != 0 {
			t.Fatalf("poll %d: cmds=%+v want none", i, cmds)
		}
	}
	cmds := p.Poll()
	if len(cmds) != 1 || cmds[0] != game.Restart() {
		t.Fatalf("cmds=%+v want restart", cmds)
	}
	if agent.Episodes != 1 {
		t.Fatalf("episodes=%d want=1", agent.Episodes)
	}
}

func TestPilot_PassesThroughQuitAndDropsTurns(t *testing.T) {
	s := newSession(t, 3)
	fe := &stubFrontend{script: [][]game.Command{{game.Turn(types.Up), game.Quit()}}}
	p := NewPilot(NewAgent(newRand(3)), s, fe)

	cmds := p.Poll()
	if len(cmds) != 1 || cmds[0] != game.Quit() {
		t.Fatalf("cmds=%+v want quit only", cmds)
	}
}

func TestPilot_RunsUntilQuit(t *testing.T) {
	s := newSession(t, 5)
	fe := &stubFrontend{quitAfter: 500}
	p := NewPilot(NewAgent(newRand(5)), s, fe)
	p.SetRestartDelay(1)

	if err := game.Run(context.Background(), s, p); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if fe.polls != 500 {
		t.Fatalf("polls=%d want=500", fe.polls)
	}
}

func TestTrainer(t *testing.T) {
	agent := NewAgent(newRand(11))
	tr := NewTrainer(agent, newRand(12), slog.New(slog.DiscardHandler))
	tr.MaxSteps = 300

	report, err := tr.Train(context.Background(), 30)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if report.Episodes != 30 || agent.Episodes != 30 {
		t.Fatalf("episodes=%d agent=%d want=30", report.Episodes, agent.Episodes)
	}
	if report.Steps <= 0 || report.Steps > 30*300 {
		t.Fatalf("steps=%d", report.Steps)
	}
	if report.Average < 0 || report.Average > float64(report.Best) {
		t.Fatalf("average=%v best=%d", report.Average, report.Best)
	}
	if len(agent.QTable) == 0 || agent.Epsilon >= 0.9 {
		t.Fatalf("states=%d epsilon=%v", len(agent.QTable), agent.Epsilon)
	}
}

func TestTrainer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewTrainer(NewAgent(newRand(1)), newRand(2), slog.New(slog.DiscardHandler))
	report, err := tr.Train(ctx, 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want context.Canceled", err)
	}
	if report.Episodes != 0 {
		t.Fatalf("episodes=%d want=0", report.Episodes)
	}
}
