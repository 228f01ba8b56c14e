package audio

import (
	"os"
	"strconv"
)

const (
	envMute   = "SNAKE_MUTE"
	envVolume = "SNAKE_VOLUME"
)

// Config holds audio settings. Volumes are in [0, 1].
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundCount]float64
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: [soundCount]float64{
			SoundEat:      0.8,
			SoundGameOver: 1.0,
			SoundRestart:  0.6,
		},
	}
}

// LoadConfig applies SNAKE_MUTE and SNAKE_VOLUME (0-100) on top of the defaults.
// Unparseable values are ignored.
func LoadConfig(getenv func(string) string) *Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := DefaultConfig()

	if mute := getenv(envMute); mute != "" {
		if val, err := strconv.ParseBool(mute); err == nil {
			cfg.Enabled = !val
		}
	}
	if volume := getenv(envVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.SetVolume(val)
		}
	}
	return cfg
}

// SetVolume sets the master volume from a 0-100 percentage, clamped
func (c *Config) SetVolume(percent int) {
	v := float64(percent) / 100.0
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c.MasterVolume = v
}
