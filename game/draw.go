package game

import (
	"fmt"

	"greedy-snake/game/entity"
	"greedy-snake/game/manager"
	"greedy-snake/game/types"
)

// Game over screen layout
const (
	titleSize   int32 = 60
	scoreSize   int32 = 60
	historySize int32 = 30
	hintSize    int32 = 20
)

var (
	titlePos   = types.Point{X: 180, Y: 260}
	scorePos   = types.Point{X: 400, Y: 30}
	historyPos = types.Point{X: 230, Y: 340}
	hintPos    = types.Point{X: 200, Y: 560}
)

func (s *Session) drawBoard(surface entity.Surface) {
	surface.Clear(types.BackgroundColor)
	for _, r := range s.renderables() {
		r.Render(surface)
	}
}

// renderables lists what is on the board in drawing order
func (s *Session) renderables() []entity.Renderable {
	return []entity.Renderable{s.Snake, s.Food, s.Wall}
}

func (s *Session) drawGameOver(surface entity.Surface) {
	surface.Text("GAME OVER", titlePos, titleSize, types.BlackColor)
	surface.Text(fmt.Sprintf("score:%d", s.Score), scorePos, scoreSize, types.RedColor)

	at := historyPos
	for i, score := range s.Scores.Top(manager.TopScores) {
		surface.Text(fmt.Sprintf("%d. %d", i+1, score), at, historySize, types.BlackColor)
		at.Y += historySize + 4
	}
	surface.Text("F2 to play again", hintPos, hintSize, types.BlackColor)
}
