// internal/defs/enemies.go
package defs

import (
	"math"

	"go-shape-defense/internal/component"
)

const MaxTier = 4

// Stat — значение, растущее с тиром: Base + PerTier*(tier-1).
type Stat struct {
	Base    float64 `yaml:"base"`
	PerTier float64 `yaml:"per_tier"`
}

// At возвращает значение для тира.
func (s Stat) At(tier int) float64 {
	return s.Base + s.PerTier*float64(tier-1)
}

// Ticks — значение для тира, округлённое вниз до целых тиков.
func (s Stat) Ticks(tier int) int {
	return int(math.Floor(s.At(tier)))
}

// SpecialDef — параметры особого поведения варианта.
type SpecialDef struct {
	Cooldown           Stat    `yaml:"cooldown"`
	Duration           int     `yaml:"duration"`
	SpeedFactor        float64 `yaml:"speed_factor"`
	AfterDuration      int     `yaml:"after_duration"`
	ShotCooldownFactor float64 `yaml:"shot_cooldown_factor"`
	ShotCooldownFloor  int     `yaml:"shot_cooldown_floor"`
}

// EnemyDefinition — статы одного варианта врага.
type EnemyDefinition struct {
	Kind          component.EnemyKind `yaml:"kind"`
	Ranged        bool                `yaml:"ranged"`
	Health        Stat                `yaml:"health"`
	Speed         Stat                `yaml:"speed"`
	Damage        Stat                `yaml:"damage"` // И для выстрела, и для ближнего боя
	Reward        Stat                `yaml:"reward"`
	Size          Stat                `yaml:"size"`
	ShotCooldown  Stat                `yaml:"shot_cooldown"`
	ShotSpeed     Stat                `yaml:"shot_speed"`
	ShotRange     Stat                `yaml:"shot_range"`
	MeleeRange    Stat                `yaml:"melee_range"`
	MeleeCooldown int                 `yaml:"melee_cooldown"`
	Armor         Stat                `yaml:"armor"`
	Special       SpecialDef          `yaml:"special"`
}

// EnemyTable — статы всех вариантов по виду.
type EnemyTable map[component.EnemyKind]*EnemyDefinition

type enemiesFile struct {
	Enemies []EnemyDefinition `yaml:"enemies"`
}

func newEnemyTable(f enemiesFile) EnemyTable {
	t := make(EnemyTable, len(f.Enemies))
	for i := range f.Enemies {
		def := &f.Enemies[i]
		t[def.Kind] = def
	}
	return t
}
