package main

import (
	"log/slog"

	"greedy-snake/audio"
	"greedy-snake/game/types"
)

// soundListener plays a sound for each game event
type soundListener struct {
	player *audio.Player
	log    *slog.Logger
}

func (l soundListener) play(sound audio.SoundType) {
	if err := l.player.Play(sound); err != nil {
		l.log.Warn("play sound", "sound", sound.String(), "err", err)
	}
}

func (l soundListener) FoodEaten(int) {
	l.play(audio.SoundEat)
}

func (l soundListener) SnakeDied(int, types.CollisionType) {
	l.play(audio.SoundGameOver)
}

func (l soundListener) SessionReset() {
	l.play(audio.SoundRestart)
}
