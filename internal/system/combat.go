// internal/system/combat.go
package system

import (
	"go.uber.org/zap"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/entity"
	"go-shape-defense/internal/event"
	"go-shape-defense/pkg/utils"
)

// CombatSystem разрешает попадания снарядов и убирает мёртвые сущности.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher, logger *zap.Logger) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		logger:          logger.Named("combat"),
	}
}

// Update проверяет каждый живой снаряд один раз. Снаряд наносит не более одного удара.
// Цели перебираются в порядке хранения, а не по расстоянию.
func (s *CombatSystem) Update() {
	for _, p := range s.world.Projectiles {
		if !p.Alive {
			continue
		}
		if p.Friendly {
			s.resolveFriendly(p)
		} else {
			s.resolveHostile(p)
		}
	}
}

func (s *CombatSystem) resolveFriendly(p *component.Projectile) {
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		if utils.Distance(e.X, e.Y, p.X, p.Y) >= e.Size/2+p.Radius {
			continue
		}
		p.Alive = false
		if DamageEnemy(e, p.Damage) {
			s.credit(e)
		}
		return
	}
}

// credit начисляет награду сразу в момент убийства.
func (s *CombatSystem) credit(e *component.Enemy) {
	if s.world.Player != nil {
		s.world.Player.Money += float64(e.KillReward)
	}
	s.logger.Debug("enemy killed",
		zap.String("kind", string(e.Kind)),
		zap.Int("tier", e.Tier),
		zap.Int("reward", e.KillReward),
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.KillData{Kind: e.Kind, Tier: e.Tier, Reward: e.KillReward},
	})
	s.eventDispatcher.Cue(event.CueEnemyKilled)
}

func (s *CombatSystem) resolveHostile(p *component.Projectile) {
	if pl := s.world.Player; pl != nil && pl.Alive() {
		if utils.Distance(pl.X, pl.Y, p.X, p.Y) < pl.Radius+p.Radius {
			p.Alive = false
			DamagePlayer(pl, p.Damage)
			return
		}
	}
	for _, t := range s.world.Towers {
		if s.hitTower(t, p) {
			return
		}
	}
	if c := s.world.Central; c != nil {
		s.hitTower(c, p)
	}
}

func (s *CombatSystem) hitTower(t *component.Tower, p *component.Projectile) bool {
	if !t.Alive() || utils.Distance(t.X, t.Y, p.X, p.Y) >= t.Radius+p.Radius {
		return false
	}
	p.Alive = false
	DamageTower(t, p.Damage, s.eventDispatcher)
	return true
}

// Cleanup удаляет мёртвое и переносит новые сущности в активные коллекции.
func (s *CombatSystem) Cleanup() {
	for _, t := range s.world.Compact() {
		s.logger.Info("tower destroyed", zap.Uint32("id", uint32(t.ID)))
		s.eventDispatcher.Dispatch(event.Event{Type: event.TowerDestroyed, Data: t.ID})
	}
	s.world.Flush()
}
