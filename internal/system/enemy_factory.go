// internal/system/enemy_factory.go
package system

import (
	"fmt"
	"math"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/types"
)

// NewEnemy создаёт врага по таблице статов. Здоровье и урон умножаются на difficulty.
// Таймеры особого поведения стартуют со своей перезарядки.
func NewEnemy(id types.EntityID, table defs.EnemyTable, kind component.EnemyKind, tier int, x, y, difficulty float64) (*component.Enemy, error) {
	def, ok := table[kind]
	if !ok {
		return nil, fmt.Errorf("unknown enemy kind %q", kind)
	}
	if tier < 1 || tier > defs.MaxTier {
		return nil, fmt.Errorf("enemy %q: tier %d out of range", kind, tier)
	}

	speed := def.Speed.At(tier)
	damage := def.Damage.At(tier) * difficulty
	e := &component.Enemy{
		ID:         id,
		Kind:       kind,
		Tier:       tier,
		Position:   component.Position{X: x, Y: y},
		Health:     component.NewHealth(def.Health.At(tier) * difficulty),
		Speed:      speed,
		BaseSpeed:  speed,
		Size:       def.Size.At(tier),
		KillReward: int(math.Floor(def.Reward.At(tier))),
		Armor:      def.Armor.At(tier),
		Ranged:     def.Ranged,

		MeleeDamage:   damage,
		MeleeRange:    def.MeleeRange.At(tier),
		MeleeCooldown: def.MeleeCooldown,

		Special: component.SpecialParams{
			Cooldown:           def.Special.Cooldown.Ticks(tier),
			Duration:           def.Special.Duration,
			SpeedFactor:        def.Special.SpeedFactor,
			AfterDuration:      def.Special.AfterDuration,
			ShotCooldownFactor: def.Special.ShotCooldownFactor,
			ShotCooldownFloor:  def.Special.ShotCooldownFloor,
		},
	}
	if def.Ranged {
		e.Weapon = component.Weapon{
			Cooldown: def.ShotCooldown.Ticks(tier),
			Damage:   damage,
			Speed:    def.ShotSpeed.At(tier),
			Range:    def.ShotRange.At(tier),
		}
	}
	e.SpecialTimer = e.Special.Cooldown
	return e, nil
}
