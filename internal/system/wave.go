// internal/system/wave.go
package system

import (
	"go.uber.org/zap"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/entity"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/utils"
)

// WaveSystem — планировщик волн: выпускает врагов шаг за шагом,
// завершает волну, начисляет награду и решает, что показать дальше.
type WaveSystem struct {
	world           *entity.World
	waves           *defs.WaveTable
	enemies         defs.EnemyTable
	limits          config.WavesConfig
	prng            *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewWaveSystem(world *entity.World, content *defs.Content, limits config.WavesConfig,
	prng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger *zap.Logger) *WaveSystem {
	if content == nil || content.Waves == nil {
		panic("system: wave scheduler needs a wave table")
	}
	return &WaveSystem{
		world:           world,
		waves:           content.Waves,
		enemies:         content.Enemies,
		limits:          limits,
		prng:            prng,
		eventDispatcher: eventDispatcher,
		logger:          logger.Named("wave"),
	}
}

// Finished — все волны пройдены
func (s *WaveSystem) Finished() bool {
	return s.world.Wave.Index >= s.waves.Len()
}

// TimeLimit — лимит тиков для волны с индексом index.
func (s *WaveSystem) TimeLimit(index int) int {
	limit := s.limits.TimeLimitBase + s.limits.TimeLimitPerWave*index
	if limit > s.limits.TimeLimitMax {
		limit = s.limits.TimeLimitMax
	}
	return limit
}

// StartWave запускает волну с текущим индексом.
func (s *WaveSystem) StartWave() {
	w := &s.world.Wave
	def, ok := s.waves.Wave(w.Index)
	if !ok {
		return
	}
	w.Status = component.WaveRunning
	w.StepIndex = 0
	w.Remaining = def.Steps[0].Count
	w.SpawnTimer = 0
	w.Elapsed = 0
	w.TimeLimit = s.TimeLimit(w.Index)

	s.logger.Info("wave started",
		zap.Int("wave", w.Index+1),
		zap.Int("steps", len(def.Steps)),
		zap.Int("time_limit", w.TimeLimit),
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Index: w.Index, Reward: def.Reward},
	})
}

func (s *WaveSystem) Update() {
	w := &s.world.Wave
	if !w.Running() {
		if !s.Finished() {
			s.StartWave()
		}
		return
	}

	def := s.waves.Waves[w.Index]
	w.Elapsed++

	if w.StepIndex < len(def.Steps) {
		w.SpawnTimer++
		if w.SpawnTimer >= def.SpawnInterval {
			w.SpawnTimer = 0
			s.spawn(def.Steps[w.StepIndex])
			w.Remaining--
			if w.Remaining <= 0 {
				w.StepIndex++
				if w.StepIndex < len(def.Steps) {
					w.Remaining = def.Steps[w.StepIndex].Count
				}
			}
		}
	} else if s.world.LivingEnemies() == 0 {
		s.complete(def, false)
		return
	}

	if w.Elapsed > w.TimeLimit {
		s.world.KillAllEnemies()
		s.complete(def, true)
	}
}

func (s *WaveSystem) spawn(step defs.WaveStep) {
	x, y := s.prng.EdgePoint(s.world.Arena)
	e, err := NewEnemy(s.world.NewEntity(), s.enemies, step.Kind, step.Tier, x, y, s.world.Difficulty)
	if err != nil {
		s.logger.Error("spawn failed", zap.Error(err))
		return
	}
	s.world.AddEnemy(e)
}

// complete закрывает текущую волну. Вызывается не более одного раза на волну:
// после него статус Idle, и Update больше не доходит до проверок.
func (s *WaveSystem) complete(def defs.WaveDefinition, timedOut bool) {
	w := &s.world.Wave
	if s.world.Player != nil {
		s.world.Player.Money += float64(def.Reward)
	}
	finished := w.Index
	w.Status = component.WaveIdle
	w.Index++

	s.logger.Info("wave ended",
		zap.Int("wave", finished+1),
		zap.Int("reward", def.Reward),
		zap.Bool("timed_out", timedOut),
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveData{Index: finished, Reward: def.Reward, TimedOut: timedOut},
	})

	if set, ok := s.waves.Interlude(w.Index); ok && !w.InterludesShown[w.Index] {
		w.InterludesShown[w.Index] = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.InterludeTriggered,
			Data: event.InterludeData{AfterWave: w.Index, SlideSet: set},
		})
		return
	}
	if s.Finished() {
		s.eventDispatcher.Dispatch(event.Event{Type: event.Victory})
	}
}

// SignalStrength — доля пройденного пути для HUD.
func SignalStrength(index, total, enemiesLeft int) float64 {
	if total <= 0 {
		return 0
	}
	if index >= total {
		if enemiesLeft == 0 {
			return 1.0
		}
		return 0.999
	}
	if index == total-1 && enemiesLeft > 0 {
		return (float64(index) + 0.99) / float64(total)
	}
	return float64(index+1) / float64(total)
}
