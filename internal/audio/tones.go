// internal/audio/tones.go
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"go-shape-defense/internal/event"
)

// note — одна нота сигнала
type note struct {
	freq   float64
	length time.Duration
	square bool
}

// cueNotes — короткие мелодии для каждого сигнала
var cueNotes = map[event.Cue][]note{
	event.CueShot:        {{freq: 880, length: 30 * time.Millisecond}},
	event.CueTowerHit:    {{freq: 140, length: 90 * time.Millisecond, square: true}},
	event.CueEnemyKilled: {{freq: 660, length: 50 * time.Millisecond}, {freq: 990, length: 70 * time.Millisecond}},
	event.CueBuild:       {{freq: 440, length: 60 * time.Millisecond}, {freq: 550, length: 60 * time.Millisecond}, {freq: 660, length: 90 * time.Millisecond}},
	event.CueDenied:      {{freq: 110, length: 150 * time.Millisecond, square: true}},
	event.CuePurchase:    {{freq: 784, length: 80 * time.Millisecond}, {freq: 1175, length: 120 * time.Millisecond}},
}

// Sound строит поток для сигнала. Неизвестный сигнал — ошибка.
func Sound(cue event.Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, fmt.Errorf("unknown cue %q", cue)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := tone(n, rate)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", cue, err)
		}
		parts = append(parts, s)
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

func tone(n note, rate beep.SampleRate) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	if n.square {
		s, err = generators.SquareTone(rate, n.freq)
	} else {
		s, err = generators.SineTone(rate, n.freq)
	}
	if err != nil {
		return nil, err
	}
	return beep.Take(rate.N(n.length), s), nil
}

// withVolume: громкость 0..1 переводится в логарифмическую шкалу effects.Volume.
// log2(0) — минус бесконечность, поэтому ноль — тишина.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	// Генераторы дают полную амплитуду, сигналы звучат тише музыки
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol * 0.25)}
}
