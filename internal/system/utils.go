// internal/system/utils.go
package system

import (
	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/event"
)

// DamageEnemy наносит урон врагу с учётом защиты варианта.
// Возвращает true, если именно этот удар убил врага.
func DamageEnemy(e *component.Enemy, amount float64) (killed bool) {
	if !e.Alive() {
		return false
	}
	amount, ok := behaviorFor(e.Kind).mitigate(e, amount)
	if !ok {
		return false
	}
	e.Health.Damage(amount)
	e.HitTimer = config.EnemyHitFlashDuration
	return !e.Alive()
}

// DamagePlayer наносит урон игроку, если не действуют кадры неуязвимости.
func DamagePlayer(p *component.Player, amount float64) {
	if p.Invincible() || !p.Alive() {
		return
	}
	p.Health.Damage(amount)
	p.IFrames = p.IFramesMax
}

// DamageTower наносит урон башне и зажигает вспышку урона.
func DamageTower(t *component.Tower, amount float64, dispatcher *event.Dispatcher) {
	if !t.Alive() {
		return
	}
	t.Health.Damage(amount)
	t.Damaged.Trigger(config.TowerDamageFlashDuration)
	dispatcher.Cue(event.CueTowerHit)
}

// target — цель атаки врага: игрок или башня.
type target struct {
	player *component.Player
	tower  *component.Tower
	x, y   float64
	dist   float64
}

func (t target) damage(amount float64, dispatcher *event.Dispatcher) {
	if t.player != nil {
		DamagePlayer(t.player, amount)
		return
	}
	DamageTower(t.tower, amount, dispatcher)
}
