package ai

import (
	"strconv"
	"strings"

	"greedy-snake/game"
	"greedy-snake/game/types"
)

// State is what the agent sees of the board: which way the food lies,
// which neighbouring cells are deadly and where the snake is heading.
type State struct {
	FoodDir  [2]int // sign of the food offset from the head on x and y
	Danger   [4]bool
	Heading  types.Direction
	Distance int // Manhattan distance to the food, in cells
}

// Observe reads the session's current run
func Observe(s *game.Session) State {
	head := s.Snake.Position()
	food := s.Food.Position()
	st := State{
		FoodDir:  [2]int{sign(food.X - head.X), sign(food.Y - head.Y)},
		Heading:  s.Snake.Direction(),
		Distance: cellDistance(head, food),
	}
	body := s.Snake.Occupied()
	for _, d := range types.Directions {
		st.Danger[d] = deadly(head.Add(d.Step(types.CellSize)), body)
	}
	return st
}

// deadly reports whether moving the head onto p ends the run. The tail
// cell is safe since it moves away on the same tick.
func deadly(p types.Point, body []types.Point) bool {
	if _, _, ok := types.CellOf(p); !ok {
		return true
	}
	for _, b := range body[:len(body)-1] {
		if b == p {
			return true
		}
	}
	return false
}

// Key encodes the state for the Q-table. Distance is left out so states
// generalise across the board.
func (s State) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.FoodDir[0]))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(s.FoodDir[1]))
	b.WriteByte('|')
	for _, d := range s.Danger {
		if d {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(s.Heading)))
	return b.String()
}

func cellDistance(a, b types.Point) int {
	return (abs(a.X-b.X) + abs(a.Y-b.Y)) / int(types.CellSize)
}

func sign(v int32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int32) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}
