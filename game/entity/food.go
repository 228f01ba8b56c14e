package entity

import "greedy-snake/game/types"

// blinkPeriod is the number of frames per blink cycle; the food is hidden
// on the first frame of every cycle.
const blinkPeriod = 5

// Food is the single piece of food on the board
type Food struct {
	Pos   types.Point
	Size  int32
	Color types.Color
	blink int
}

func NewFood(pos types.Point) *Food {
	return &Food{Pos: pos, Size: types.CellSize, Color: types.RedColor}
}

func (f *Food) Position() types.Point {
	return f.Pos
}

// Visible reports whether the next Render call will draw the food
func (f *Food) Visible() bool {
	return f.blink%blinkPeriod != 0
}

// Render draws the food as a circle inscribed in its cell and advances the blink counter
func (f *Food) Render(s Surface) {
	if f.Visible() {
		half := f.Size / 2
		s.FillCircle(types.Point{X: f.Pos.X + half, Y: f.Pos.Y + half}, half, f.Color)
	}
	f.blink++
}
