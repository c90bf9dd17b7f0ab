// internal/system/projectile.go
package system

import "go-shape-defense/internal/entity"

// ProjectileSystem двигает снаряды по прямой. Снаряд за пределами арены гибнет.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	for _, p := range s.world.Projectiles {
		if !p.Alive {
			continue
		}
		p.X += p.DX * p.Speed
		p.Y += p.DY * p.Speed
		if !s.world.Arena.Contains(p.X, p.Y) {
			p.Alive = false
		}
	}
}
