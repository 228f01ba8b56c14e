package ui

import (
	"greedy-snake/game"
	"greedy-snake/game/entity"
	"greedy-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const windowTitle = "Greedy Snake"

// Renderer is the raylib window frontend. Frame pacing comes from
// SetTargetFPS: EndDrawing blocks until the next tick is due.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
}

// NewRenderer opens the game window. It must be called from the main goroutine.
func NewRenderer(fps int) *Renderer {
	r := &Renderer{
		screenWidth:  types.ScreenSize,
		screenHeight: types.ScreenSize,
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(r.screenWidth, r.screenHeight, windowTitle)
	rl.SetExitKey(rl.KeyNull) // Esc is handled as a quit command
	rl.SetTargetFPS(int32(fps))
	return r
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

// Poll drains the keys pressed since the last frame, in order
func (r *Renderer) Poll() []game.Command {
	var cmds []game.Command
	if rl.WindowShouldClose() {
		return append(cmds, game.Quit())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if cmd, ok := keyCommand(key); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (r *Renderer) BeginFrame() entity.Surface {
	rl.BeginDrawing()
	return r
}

func (r *Renderer) EndFrame() {
	rl.EndDrawing()
}

func keyCommand(key int32) (game.Command, bool) {
	switch key {
	case rl.KeyW, rl.KeyUp:
		return game.Turn(types.Up), true
	case rl.KeyD, rl.KeyRight:
		return game.Turn(types.Right), true
	case rl.KeyS, rl.KeyDown:
		return game.Turn(types.Down), true
	case rl.KeyA, rl.KeyLeft:
		return game.Turn(types.Left), true
	case rl.KeyF2, rl.KeyR:
		return game.Restart(), true
	case rl.KeyEscape, rl.KeyQ:
		return game.Quit(), true
	}
	return game.Command{}, false
}

func color(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (r *Renderer) Clear(c types.Color) {
	rl.ClearBackground(color(c))
}

func (r *Renderer) FillRect(rect types.Rect, c types.Color) {
	rl.DrawRectangle(rect.X, rect.Y, rect.W, rect.H, color(c))
}

func (r *Renderer) StrokeRect(rect types.Rect, thickness int32, c types.Color) {
	rl.DrawRectangleLinesEx(
		rl.NewRectangle(float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H)),
		float32(thickness),
		color(c))
}

func (r *Renderer) FillCircle(center types.Point, radius int32, c types.Color) {
	rl.DrawCircle(center.X, center.Y, float32(radius), color(c))
}

func (r *Renderer) Text(s string, at types.Point, size int32, c types.Color) {
	rl.DrawText(s, at.X, at.Y, size, color(c))
}
