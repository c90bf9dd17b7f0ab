// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/system"
	"go-shape-defense/internal/types"
	"go-shape-defense/pkg/utils"
)

// ErrTooClose — новая башня перекрывала бы существующую.
var ErrTooClose = errors.New("too close to another tower")

// BuildTower ставит башню в позиции игрока.
func (g *Game) BuildTower() error {
	if err := g.canPlaceTower(); err != nil {
		g.logger.Debug("tower rejected", zap.Error(err))
		g.EventDispatcher.Cue(event.CueDenied)
		return err
	}

	p := g.World.Player
	pt := g.Config.PlacedTower
	t := newTower(g.World.NewEntity(), component.TowerPlaced, p.X, p.Y, pt.TowerConfig)
	p.Money -= float64(pt.Cost)
	g.World.AddTower(t)

	g.logger.Info("tower placed",
		zap.Uint32("id", uint32(t.ID)),
		zap.Float64("x", t.X),
		zap.Float64("y", t.Y),
	)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: t.ID})
	g.EventDispatcher.Cue(event.CueBuild)
	return nil
}

// canPlaceTower: хватает денег и до любой живой башни не ближе radius + margin + spacing.
func (g *Game) canPlaceTower() error {
	p := g.World.Player
	pt := g.Config.PlacedTower
	if p == nil || !p.Alive() {
		return errors.New("player is dead")
	}
	if p.Money < float64(pt.Cost) {
		return fmt.Errorf("%w: tower costs %d", system.ErrInsufficientFunds, pt.Cost)
	}
	check := func(t *component.Tower) error {
		if !t.Alive() {
			return nil
		}
		if utils.Distance(t.X, t.Y, p.X, p.Y) < t.Radius+pt.BuildMargin+pt.MinSpacing {
			return fmt.Errorf("%w: %s tower %d", ErrTooClose, t.Kind, t.ID)
		}
		return nil
	}
	for _, t := range g.World.Towers {
		if err := check(t); err != nil {
			return err
		}
	}
	if g.World.Central != nil {
		return check(g.World.Central)
	}
	return nil
}

func newTower(id types.EntityID, kind component.TowerKind, x, y float64, tc config.TowerConfig) *component.Tower {
	return &component.Tower{
		ID:       id,
		Kind:     kind,
		Position: component.Position{X: x, Y: y},
		Health:   component.NewHealth(tc.MaxHealth),
		Weapon: component.Weapon{
			Cooldown: tc.ShotCooldown,
			Damage:   tc.ShotDamage,
			Speed:    tc.ShotSpeed,
			Range:    tc.ShotRange,
		},
		Radius:    tc.Radius,
		RegenRate: tc.RegenRate,
	}
}
