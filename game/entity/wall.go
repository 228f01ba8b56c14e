package entity

import "greedy-snake/game/types"

// Wall bounds the play area. It never changes during a session.
type Wall struct {
	Bounds types.Rect
	Tick   int32
	Color  types.Color
}

// NewWall returns the standard 600x600 wall at the board origin
func NewWall() Wall {
	return Wall{
		Bounds: types.Rect{X: types.BoardOrigin, Y: types.BoardOrigin, W: types.WallWidth, H: types.WallHeight},
		Tick:   types.WallTick,
		Color:  types.BlackColor,
	}
}

func (w Wall) Position() types.Point {
	return w.Bounds.Min()
}

func (w Wall) Render(s Surface) {
	s.StrokeRect(w.Bounds, w.Tick, w.Color)
}
