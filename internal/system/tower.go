// internal/system/tower.go
package system

import (
	"math"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/entity"
	"go-shape-defense/internal/event"
	"go-shape-defense/pkg/utils"
)

// TowerSystem управляет стрельбой башен и регенерацией построенных.
type TowerSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewTowerSystem(world *entity.World, eventDispatcher *event.Dispatcher) *TowerSystem {
	return &TowerSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update: сначала центральная башня, затем построенные в порядке постройки.
func (s *TowerSystem) Update() {
	if s.world.Central != nil {
		s.updateTower(s.world.Central)
	}
	for _, t := range s.world.Towers {
		s.updateTower(t)
		t.Heal(t.RegenRate)
	}
}

func (s *TowerSystem) updateTower(t *component.Tower) {
	if !t.Alive() {
		return
	}
	t.Weapon.Tick()
	t.Firing.Tick()
	t.Damaged.Tick()

	if !t.Weapon.Ready() {
		return
	}
	target := s.nearestEnemy(t)
	if target == nil {
		return
	}
	nx, ny, dist := utils.Direction(t.X, t.Y, target.X, target.Y)
	if dist == 0 {
		return
	}
	// Снаряд появляется чуть впереди края башни
	offset := t.Radius + config.TowerMuzzleOffset
	s.world.AddProjectile(&component.Projectile{
		ID:       s.world.NewEntity(),
		Position: component.Position{X: t.X + nx*offset, Y: t.Y + ny*offset},
		DX:       nx,
		DY:       ny,
		Speed:    t.Weapon.Speed,
		Damage:   t.Weapon.Damage,
		Radius:   config.ProjectileRadius,
		Friendly: true,
		Alive:    true,
	})
	t.Weapon.Reset()
	t.Firing.Trigger(config.TowerFiringFlashDuration)
	s.eventDispatcher.Cue(event.CueShot)
}

// nearestEnemy — ближайший живой враг строго внутри радиуса башни.
func (s *TowerSystem) nearestEnemy(t *component.Tower) *component.Enemy {
	var best *component.Enemy
	bestDist := math.Inf(1)
	for _, e := range s.world.Enemies {
		if !e.Alive() {
			continue
		}
		d := utils.Distance(t.X, t.Y, e.X, e.Y)
		if d < t.Weapon.Range && d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
