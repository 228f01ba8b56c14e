package entity

import "greedy-snake/game/types"

// Surface is the drawing target a frontend hands to the game each frame.
// Coordinates are screen units of the 620x620 logical board.
type Surface interface {
	Clear(c types.Color)
	FillRect(r types.Rect, c types.Color)
	StrokeRect(r types.Rect, thickness int32, c types.Color)
	FillCircle(center types.Point, radius int32, c types.Color)
	Text(s string, at types.Point, size int32, c types.Color)
}

// Renderable is anything placed on the board that knows how to draw itself
type Renderable interface {
	Position() types.Point
	Render(s Surface)
}
