package term

import (
	"greedy-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Surface maps board coordinates onto terminal cells. Board cell (col, row)
// lands on grid cell (col+1, row+1); grid cell 0 and GridCols-1 hold the wall.
type Surface struct {
	screen tcell.Screen
	bg     types.Color
}

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen, bg: types.BackgroundColor}
}

func toColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// gridCell converts a board coordinate to a grid cell index
func gridCell(v int32) int {
	d := v - types.BoardOrigin
	q := d / types.CellSize
	if d%types.CellSize != 0 && d < 0 {
		q--
	}
	return int(q) + 1
}

// span returns the grid cells covered by [v, v+size)
func span(v, size int32) (int, int) {
	if size <= 0 {
		size = 1
	}
	return gridCell(v), gridCell(v + size - 1)
}

func (s *Surface) fillCell(col, row int, style tcell.Style) {
	s.putCell(col, row, ' ', ' ', style)
}

func (s *Surface) putCell(col, row int, left, right rune, style tcell.Style) {
	w, h := s.screen.Size()
	x := col * cellColumns
	if col < 0 || row < 0 || row >= h || x+1 >= w {
		return
	}
	s.screen.SetContent(x, row, left, nil, style)
	s.screen.SetContent(x+1, row, right, nil, style)
}

func (s *Surface) Clear(c types.Color) {
	s.bg = c
	style := tcell.StyleDefault.Background(toColor(c))
	w, h := s.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *Surface) FillRect(r types.Rect, c types.Color) {
	style := tcell.StyleDefault.Background(toColor(c))
	c0, c1 := span(r.X, r.W)
	r0, r1 := span(r.Y, r.H)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.fillCell(col, row, style)
		}
	}
}

// StrokeRect draws the outline one cell outside the rectangle. Outlines of
// rectangles narrower than three cells are skipped: there is no room for
// them without covering neighbouring cells.
func (s *Surface) StrokeRect(r types.Rect, _ int32, c types.Color) {
	c0, c1 := span(r.X, r.W)
	r0, r1 := span(r.Y, r.H)
	if c1-c0 < 2 || r1-r0 < 2 {
		return
	}
	style := tcell.StyleDefault.Background(toColor(c))
	for col := c0 - 1; col <= c1+1; col++ {
		s.fillCell(col, r0-1, style)
		s.fillCell(col, r1+1, style)
	}
	for row := r0; row <= r1; row++ {
		s.fillCell(c0-1, row, style)
		s.fillCell(c1+1, row, style)
	}
}

func (s *Surface) FillCircle(center types.Point, _ int32, c types.Color) {
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(toColor(s.bg))
	s.putCell(gridCell(center.X), gridCell(center.Y), '●', ' ', style)
}

// Text writes s starting at the cell containing at. Font size is ignored.
func (s *Surface) Text(text string, at types.Point, _ int32, c types.Color) {
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(toColor(s.bg)).Bold(true)
	w, h := s.screen.Size()
	x, y := gridCell(at.X)*cellColumns, gridCell(at.Y)
	if y < 0 || y >= h {
		return
	}
	for _, r := range text {
		if x >= w {
			break
		}
		if x >= 0 {
			s.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
