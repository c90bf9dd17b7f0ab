// internal/system/render.go
package system

import (
	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/entity"
	"go-shape-defense/internal/render"
)

const controlsHint = "WASD: move   LMB: fire   T: tower   U: upgrades   H: help"

// RenderSystem превращает мир в запросы на отрисовку.
type RenderSystem struct {
	world      *entity.World
	totalWaves int
}

func NewRenderSystem(world *entity.World, totalWaves int) *RenderSystem {
	return &RenderSystem{world: world, totalWaves: totalWaves}
}

// Draw: центральная башня, построенные башни, враги, снаряды, игрок, HUD.
func (s *RenderSystem) Draw(sink render.Sink) {
	w := s.world
	sink.Clear(config.BackgroundColor)

	if w.Central != nil && w.Central.Alive() {
		sink.DrawSprite(towerSprite(w.Central))
	}
	for _, t := range w.Towers {
		if t.Alive() {
			sink.DrawSprite(towerSprite(t))
		}
	}
	for _, e := range w.Enemies {
		if e.Alive() {
			sink.DrawSprite(enemySprite(e))
		}
	}
	for _, p := range w.Projectiles {
		if !p.Alive {
			continue
		}
		sink.DrawShot(render.Shot{X: p.X, Y: p.Y, Radius: p.Radius, Friendly: p.Friendly})
	}
	if p := w.Player; p != nil {
		sink.DrawSprite(render.Sprite{
			ID:          p.ID,
			Shape:       render.ShapeCircle,
			X:           p.X,
			Y:           p.Y,
			Size:        p.Radius * 2,
			Color:       config.PlayerColor,
			HealthRatio: p.Ratio(),
			ShowHealth:  true,
			// Мерцание каждые 5 кадров неуязвимости
			Flicker: p.IFrames > 0 && (p.IFrames/5)%2 == 1,
		})
	}
	sink.DrawHUD(s.HUD())
}

// HUD собирает верхнюю строку.
func (s *RenderSystem) HUD() render.HUD {
	w := s.world
	h := render.HUD{
		SignalStrength: SignalStrength(w.Wave.Index, s.totalWaves, len(w.Enemies)),
		Wave:           w.Wave.Index + 1,
		Waves:          s.totalWaves,
		Controls:       controlsHint,
	}
	if h.Wave > s.totalWaves {
		h.Wave = s.totalWaves
	}
	if p := w.Player; p != nil {
		h.Health, h.MaxHealth = p.Value, p.Max
		h.Money = int(p.Money)
	}
	if c := w.Central; c != nil {
		h.CentralHealth, h.CentralMax = c.Value, c.Max
	}
	return h
}

func towerSprite(t *component.Tower) render.Sprite {
	sp := render.Sprite{
		ID:          t.ID,
		Shape:       render.ShapeCircle,
		X:           t.X,
		Y:           t.Y,
		Size:        t.Radius * 2,
		HealthRatio: t.Ratio(),
		ShowHealth:  true,
		Range:       t.Weapon.Range,
		Firing:      t.Firing.Active(),
		Damaged:     t.Damaged.Active(),
	}
	switch {
	case sp.Damaged:
		sp.Color = config.TowerDamagedColor
	case sp.Firing:
		sp.Color = config.TowerFiringColor
	case t.Kind == component.TowerCentral:
		sp.Color = config.CentralTowerColor
	default:
		sp.Color = config.PlacedTowerColor
	}
	return sp
}

var enemyShapes = map[component.EnemyKind]render.Shape{
	component.EnemyTriangle: render.ShapeTriangle,
	component.EnemySquare:   render.ShapeSquare,
	component.EnemyStar:     render.ShapeStar,
	component.EnemyBoss:     render.ShapeBoss,
}

func enemySprite(e *component.Enemy) render.Sprite {
	sp := render.Sprite{
		ID:          e.ID,
		Shape:       enemyShapes[e.Kind],
		X:           e.X,
		Y:           e.Y,
		Size:        e.Size,
		Color:       config.EnemyColors[string(e.Kind)],
		HealthRatio: e.Ratio(),
		ShowHealth:  true,
		Hit:         e.Hit(),
		Invisible:   e.Invisible(),
		Charging:    e.Charging(),
		Aiming:      e.Aiming(),
		Dashing:     e.Dashing(),
		Raging:      e.Raging(),
	}
	if sp.Hit {
		sp.Color = config.HitColor
	}
	return sp
}
