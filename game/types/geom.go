package types

// Direction is one of the four cardinal directions.
// The encoding matters: two directions are opposite iff their sum is even.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all directions in encoding order
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Opposite reports whether d and o point in opposite directions
func (d Direction) Opposite(o Direction) bool {
	return d != o && (d+o)%2 == 0
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Step returns the displacement of one move of the given size
func (d Direction) Step(size int32) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -size}
	case Right:
		return Point{X: size, Y: 0}
	case Down:
		return Point{X: 0, Y: size}
	default:
		return Point{X: -size, Y: 0}
	}
}

// Rect is an axis aligned rectangle in screen units
type Rect struct {
	X, Y, W, H int32
}

// RectAt returns the square of the given size with its top-left corner at p
func RectAt(p Point, size int32) Rect {
	return Rect{X: p.X, Y: p.Y, W: size, H: size}
}

// Min returns the top-left corner
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether o lies fully inside r. Shared edges count as inside.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.X+o.W <= r.X+r.W &&
		o.Y >= r.Y && o.Y+o.H <= r.Y+r.H
}
