// internal/audio/player.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"go-shape-defense/internal/config"
	"go-shape-defense/internal/event"
)

// Player проигрывает звуковые сигналы игры. Подписывается на event.SoundCue.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	logger      *zap.Logger
}

func NewPlayer(cfg config.AudioConfig, logger *zap.Logger) *Player {
	return &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger.Named("audio"),
	}
}

// Init открывает устройство вывода. Выключенный звук — не ошибка.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Info("audio ready", zap.Int("sample_rate", p.cfg.SampleRate))
	return nil
}

// Attach подписывает плеер на сигналы диспетчера.
func (p *Player) Attach(d *event.Dispatcher) {
	d.Subscribe(event.SoundCue, p)
}

// OnEvent реализует интерфейс event.Listener.
func (p *Player) OnEvent(e event.Event) {
	if cue, ok := e.Data.(event.Cue); ok {
		p.Play(cue)
	}
}

// Play добавляет сигнал в микшер. До Init ничего не делает.
func (p *Player) Play(cue event.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Sound(cue, p.rate, p.cfg.Volume)
	if err != nil {
		p.logger.Warn("cannot play cue", zap.Error(err))
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close глушит все звуки.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
