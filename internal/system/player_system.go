// internal/system/player_system.go
package system

import (
	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/entity"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/input"
	"go-shape-defense/pkg/utils"
)

// PlayerSystem применяет намерения игрока: движение и стрельбу.
type PlayerSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *PlayerSystem) Update(in input.Intents) {
	p := s.world.Player
	if p == nil || !p.Alive() {
		return
	}

	// Оси независимы, диагональ не нормализуется
	p.X += float64(clampAxis(in.MoveX)) * p.Speed
	p.Y += float64(clampAxis(in.MoveY)) * p.Speed
	p.X = utils.Clamp(p.X, p.Radius, s.world.Arena.Width-p.Radius)
	p.Y = utils.Clamp(p.Y, p.Radius, s.world.Arena.Height-p.Radius)

	if p.FireTimer > 0 {
		p.FireTimer--
	}
	if in.Fire && p.FireTimer == 0 {
		nx, ny, dist := utils.Direction(p.X, p.Y, in.AimX, in.AimY)
		if dist > 0 {
			s.world.AddProjectile(&component.Projectile{
				ID:       s.world.NewEntity(),
				Position: component.Position{X: p.X, Y: p.Y},
				DX:       nx,
				DY:       ny,
				Speed:    p.BulletSpeed,
				Damage:   p.BulletDamage,
				Radius:   config.ProjectileRadius,
				Friendly: true,
				Alive:    true,
			})
			p.FireTimer = p.FireCooldown
		}
	}

	if p.IFrames > 0 {
		p.IFrames--
	}
}

func clampAxis(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
