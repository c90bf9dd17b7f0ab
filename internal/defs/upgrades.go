// internal/defs/upgrades.go
package defs

import "go-shape-defense/internal/component"

// UpgradeTarget — к чему применяется эффект улучшения
type UpgradeTarget string

const (
	TargetPlayer  UpgradeTarget = "player"
	TargetCentral UpgradeTarget = "central"
	TargetTowers  UpgradeTarget = "towers"
	TargetEconomy UpgradeTarget = "economy"
)

// Effect — приращения, которые даёт один уровень улучшения.
// Нулевые поля не применяются.
type Effect struct {
	Damage         float64 `yaml:"damage"`
	CooldownFactor float64 `yaml:"cooldown_factor"`
	CooldownFloor  int     `yaml:"cooldown_floor"`
	Range          float64 `yaml:"range"`
	Health         float64 `yaml:"health"`
	Regen          float64 `yaml:"regen"`
	Speed          float64 `yaml:"speed"`
	Income         float64 `yaml:"income"`
}

type UpgradeDefinition struct {
	Kind     component.UpgradeKind `yaml:"kind"`
	Label    string                `yaml:"label"`
	Category string                `yaml:"category"`
	BaseCost int                   `yaml:"base_cost"`
	Target   UpgradeTarget         `yaml:"target"`
	Effect   Effect                `yaml:"effect"`
}

// Catalog — каталог улучшений в порядке меню.
type Catalog struct {
	CostMultiplier float64             `yaml:"cost_multiplier"`
	Upgrades       []UpgradeDefinition `yaml:"upgrades"`

	byKind map[component.UpgradeKind]*UpgradeDefinition
}

func (c *Catalog) index() {
	c.byKind = make(map[component.UpgradeKind]*UpgradeDefinition, len(c.Upgrades))
	for i := range c.Upgrades {
		c.byKind[c.Upgrades[i].Kind] = &c.Upgrades[i]
	}
}

// Get ищет улучшение по виду.
func (c *Catalog) Get(kind component.UpgradeKind) (*UpgradeDefinition, bool) {
	if c.byKind == nil {
		c.index()
	}
	def, ok := c.byKind[kind]
	return def, ok
}

// Categories возвращает категории в порядке первого появления.
func (c *Catalog) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, u := range c.Upgrades {
		if !seen[u.Category] {
			seen[u.Category] = true
			out = append(out, u.Category)
		}
	}
	return out
}
