package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	fadeIn  = 5 * time.Millisecond
	fadeOut = 40 * time.Millisecond
)

// fade shapes a finite stream with a linear fade in and fade out so notes
// don't click when they start or stop
type fade struct {
	streamer beep.Streamer
	pos      int
	in       int
	out      int
	total    int
}

func newFade(s beep.Streamer, length time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(length)
	in, out := rate.N(fadeIn), rate.N(fadeOut)
	if in+out > total {
		in, out = total/2, total/2
	}
	return &fade{streamer: beep.Take(total, s), in: in, out: out, total: total}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.pos < f.in {
			gain = float64(f.pos) / float64(f.in)
		}
		if left := f.total - f.pos; left < f.out {
			gain = math.Min(gain, float64(left)/float64(f.out))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales s linearly by vol; a zero volume is silent since
// effects.Volume works on a log scale
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type note struct {
	freq   float64
	length time.Duration
}

func tone(rate beep.SampleRate, n note) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, n.freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", n.freq, err)
	}
	return newFade(sine, n.length, rate), nil
}

func melody(rate beep.SampleRate, notes ...note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := tone(rate, n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...), nil
}

// eatSound is a quick rising two-note chime
func eatSound(rate beep.SampleRate) (beep.Streamer, error) {
	return melody(rate,
		note{880, 60 * time.Millisecond},
		note{1320, 90 * time.Millisecond},
	)
}

// gameOverSound is a falling three-note phrase over a low drone
func gameOverSound(rate beep.SampleRate) (beep.Streamer, error) {
	phrase, err := melody(rate,
		note{440, 150 * time.Millisecond},
		note{330, 150 * time.Millisecond},
		note{220, 300 * time.Millisecond},
	)
	if err != nil {
		return nil, err
	}
	drone, err := tone(rate, note{110, 600 * time.Millisecond})
	if err != nil {
		return nil, err
	}
	return beep.Mix(newVolume(phrase, 0.7), newVolume(drone, 0.3)), nil
}

func restartSound(rate beep.SampleRate) (beep.Streamer, error) {
	return tone(rate, note{660, 80 * time.Millisecond})
}

// GetSoundEffect builds a fresh streamer for the given sound, scaled by the
// effect and master volumes
func GetSoundEffect(sound SoundType, cfg *Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	var (
		s   beep.Streamer
		err error
	)
	switch sound {
	case SoundEat:
		s, err = eatSound(rate)
	case SoundGameOver:
		s, err = gameOverSound(rate)
	case SoundRestart:
		s, err = restartSound(rate)
	default:
		return nil, fmt.Errorf("unknown sound %d", sound)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s sound: %w", sound, err)
	}
	return newVolume(s, cfg.EffectVolumes[sound]*cfg.MasterVolume), nil
}
