package manager

import (
	"errors"
	"testing"

	"greedy-snake/game/entity"
	"greedy-snake/game/types"

	"golang.org/x/exp/rand"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestSpawn_OnBoardAndAligned(t *testing.T) {
	fm := NewFoodManager(types.DefaultGrid, newRand(1))
	for i := 0; i < 500; i++ {
		f, err := fm.Spawn(nil)
		if err != nil {
			t.Fatalf("spawn %d: %v", i, err)
		}
		if _, _, ok := types.CellOf(f.Position()); !ok {
			t.Fatalf("spawn %d: %v is not a board cell", i, f.Position())
		}
	}
}

func TestSpawn_AvoidsOccupied(t *testing.T) {
	snake := entity.NewSnake()
	occupied := snake.Occupied()
	fm := NewFoodManager(types.DefaultGrid, newRand(7))
	for i := 0; i < 1000; i++ {
		f, err := fm.Spawn(occupied)
		if err != nil {
			t.Fatalf("spawn %d: %v", i, err)
		}
		for _, p := range occupied {
			if f.Position() == p {
				t.Fatalf("spawn %d: food on snake at %v", i, p)
			}
		}
	}
}

func TestSpawn_NearlyFullBoardUsesFreeCell(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 6}
	free := types.Cell(4, 2)
	var occupied []types.Point
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			if p := types.Cell(col, row); p != free {
				occupied = append(occupied, p)
			}
		}
	}
	fm := NewFoodManager(grid, newRand(3))
	for i := 0; i < 20; i++ {
		f, err := fm.Spawn(occupied)
		if err != nil {
			t.Fatalf("spawn: %v", err)
		}
		if f.Position() != free {
			t.Fatalf("food=%v want=%v", f.Position(), free)
		}
	}
}

func TestSpawn_FullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	occupied := []types.Point{types.Cell(0, 0), types.Cell(1, 0), types.Cell(0, 1), types.Cell(1, 1)}
	fm := NewFoodManager(grid, newRand(1))
	if _, err := fm.Spawn(occupied); !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err=%v want=%v", err, ErrBoardFull)
	}
}

func TestResolve(t *testing.T) {
	cm := NewCollisionManager(entity.NewWall())

	alive := entity.NewSnake()
	if got := cm.Resolve(alive); got != types.NoCollision {
		t.Fatalf("got=%v want=none", got)
	}

	wall := entity.NewSnakeFrom([]types.Point{{X: -10, Y: 250}}, types.Left)
	if got := cm.Resolve(wall); got != types.WallCollision {
		t.Fatalf("got=%v want=wall", got)
	}

	body := []types.Point{{X: 110, Y: 130}, {X: 130, Y: 110}, {X: 130, Y: 130}, {X: 110, Y: 130}}
	self := entity.NewSnakeFrom(body, types.Up)
	if got := cm.Resolve(self); got != types.SelfCollision {
		t.Fatalf("got=%v want=self", got)
	}
	// Already dead: the first cause sticks.
	if got := cm.Resolve(self); got != types.SelfCollision {
		t.Fatalf("second resolve got=%v want=self", got)
	}
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(entity.NewWall())
	s := entity.NewSnake()
	if !cm.IsFoodCollision(s, entity.NewFood(types.Point{X: 290, Y: 250})) {
		t.Fatal("head on food not detected")
	}
	if cm.IsFoodCollision(s, entity.NewFood(types.Point{X: 310, Y: 250})) {
		t.Fatal("body on food reported as eaten")
	}
}

func TestScoreBoard(t *testing.T) {
	sb := NewScoreBoard(4)
	for _, s := range []int{3, 9, 1, 9, 4, 0, 12} {
		sb.Record(s)
	}
	want := []int{12, 9, 9, 4}
	got := sb.Top(10)
	if len(got) != len(want) {
		t.Fatalf("top=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("top=%v want=%v", got, want)
		}
	}
	if top := sb.Top(TopScores); len(top) != 4 {
		t.Fatalf("top5=%v", top)
	}
	if sb.Best() != 12 {
		t.Fatalf("best=%d want=12", sb.Best())
	}
	if sb.GamesPlayed() != 7 {
		t.Fatalf("games=%d want=7", sb.GamesPlayed())
	}
	if avg := sb.Average(); avg != 38.0/7.0 {
		t.Fatalf("avg=%f want=%f", avg, 38.0/7.0)
	}
}

func TestScoreBoard_Empty(t *testing.T) {
	sb := NewScoreBoard(0)
	if sb.Best() != 0 || sb.Average() != 0 || len(sb.Top(TopScores)) != 0 {
		t.Fatal("empty board should report zeros")
	}
	sb.Record(2)
	if got := sb.Top(-1); len(got) != 0 {
		t.Fatalf("top(-1)=%v", got)
	}
}

func TestScoreBoard_TopIsCopy(t *testing.T) {
	sb := NewScoreBoard(5)
	sb.Record(5)
	top := sb.Top(1)
	top[0] = 100
	if sb.Best() != 5 {
		t.Fatalf("best=%d after mutating Top result", sb.Best())
	}
}
