package manager

import (
	"errors"

	"greedy-snake/game/entity"
	"greedy-snake/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when every cell is occupied and no food can be placed
var ErrBoardFull = errors.New("manager: no free cell for food")

// maxSpawnAttempts bounds the random resample loop before falling back to
// sampling from the free cells directly.
const maxSpawnAttempts = 64

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Spawn places a new piece of food on a uniformly random cell not in occupied
func (fm *FoodManager) Spawn(occupied []types.Point) (*entity.Food, error) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	for i := 0; i < maxSpawnAttempts; i++ {
		p := types.Cell(fm.rng.Intn(fm.grid.Width), fm.rng.Intn(fm.grid.Height))
		if _, ok := taken[p]; !ok {
			return entity.NewFood(p), nil
		}
	}

	free := fm.freeCells(taken)
	if len(free) == 0 {
		return nil, ErrBoardFull
	}
	return entity.NewFood(free[fm.rng.Intn(len(free))]), nil
}

func (fm *FoodManager) freeCells(taken map[types.Point]struct{}) []types.Point {
	free := make([]types.Point, 0, fm.grid.Width*fm.grid.Height)
	for row := 0; row < fm.grid.Height; row++ {
		for col := 0; col < fm.grid.Width; col++ {
			p := types.Cell(col, row)
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
