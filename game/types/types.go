package types

// Grid represents the board dimensions in cells
type Grid struct {
	Width  int
	Height int
}

// Board geometry
const (
	CellSize    int32 = 20  // Size of one grid cell in screen units
	BoardOrigin int32 = 10  // Top-left corner of the play area
	BoardCols         = 30  // Cells per row
	BoardRows         = 30  // Cells per column
	WallWidth   int32 = 600 // BoardCols * CellSize
	WallHeight  int32 = 600 // BoardRows * CellSize
	WallTick    int32 = 3   // Wall outline thickness
	ScreenSize  int32 = 620 // Play area plus border on both sides
)

// Snake defaults
const (
	InitialLength       = 5
	StartX        int32 = 290
	StartY        int32 = 250
)

// DefaultGrid is the standard 30x30 board
var DefaultGrid = Grid{Width: BoardCols, Height: BoardRows}

// Point is a position in screen units, aligned to the grid
type Point struct {
	X, Y int32
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Cell returns the screen position of the cell at (col, row)
func Cell(col, row int) Point {
	return Point{
		X: BoardOrigin + int32(col)*CellSize,
		Y: BoardOrigin + int32(row)*CellSize,
	}
}

// CellOf is the inverse of Cell. ok is false if p is off the board or misaligned.
func CellOf(p Point) (col, row int, ok bool) {
	dx := p.X - BoardOrigin
	dy := p.Y - BoardOrigin
	if dx < 0 || dy < 0 || dx%CellSize != 0 || dy%CellSize != 0 {
		return 0, 0, false
	}
	col, row = int(dx/CellSize), int(dy/CellSize)
	if col >= BoardCols || row >= BoardRows {
		return 0, 0, false
	}
	return col, row, true
}

// Color is an RGBA color independent of any rendering backend
type Color struct {
	R, G, B, A uint8
}

var (
	BackgroundColor = Color{R: 242, G: 242, B: 242, A: 255}
	BlackColor      = Color{R: 0, G: 0, B: 0, A: 255}
	RedColor        = Color{R: 255, G: 0, B: 0, A: 255}
	GreenColor      = Color{R: 0, G: 255, B: 0, A: 255}
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
