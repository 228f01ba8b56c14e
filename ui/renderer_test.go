package ui

import (
	"testing"

	"greedy-snake/game"
	"greedy-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  int32
		want game.Command
	}{
		{rl.KeyW, game.Turn(types.Up)},
		{rl.KeyUp, game.Turn(types.Up)},
		{rl.KeyD, game.Turn(types.Right)},
		{rl.KeyRight, game.Turn(types.Right)},
		{rl.KeyS, game.Turn(types.Down)},
		{rl.KeyDown, game.Turn(types.Down)},
		{rl.KeyA, game.Turn(types.Left)},
		{rl.KeyLeft, game.Turn(types.Left)},
		{rl.KeyF2, game.Restart()},
		{rl.KeyR, game.Restart()},
		{rl.KeyEscape, game.Quit()},
	}
	for _, tt := range tests {
		got, ok := keyCommand(tt.key)
		if !ok || got != tt.want {
			t.Errorf("key=%d got=%+v,%v want=%+v", tt.key, got, ok, tt.want)
		}
	}
	if _, ok := keyCommand(rl.KeySpace); ok {
		t.Error("space should not map to a command")
	}
}

func TestColor(t *testing.T) {
	got := color(types.BackgroundColor)
	if got.R != 242 || got.G != 242 || got.B != 242 || got.A != 255 {
		t.Fatalf("color=%+v", got)
	}
}
