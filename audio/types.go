// Package audio plays short synthesized sound effects through beep.
package audio

// SoundType identifies a sound effect
type SoundType int

const (
	SoundEat SoundType = iota
	SoundGameOver
	SoundRestart
	soundCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "gameover"
	case SoundRestart:
		return "restart"
	default:
		return "unknown"
	}
}
