package entity

import "greedy-snake/game/types"

// Node is one body segment of the snake
type Node struct {
	Pos  types.Point
	Size int32
}

func (n Node) Position() types.Point {
	return n.Pos
}

// Bounds returns the square the node covers
func (n Node) Bounds() types.Rect {
	return types.RectAt(n.Pos, n.Size)
}

func (n Node) Render(s Surface) {
	s.FillRect(n.Bounds(), types.GreenColor)
	s.StrokeRect(n.Bounds(), 1, types.BlackColor)
}
