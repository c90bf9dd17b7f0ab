// internal/system/upgrade.go
package system

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/entity"
	"go-shape-defense/internal/event"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
)

// UpgradeSystem — экономика улучшений: цены, покупки и пассивные накопители.
type UpgradeSystem struct {
	world           *entity.World
	catalog         *defs.Catalog
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewUpgradeSystem(world *entity.World, catalog *defs.Catalog, eventDispatcher *event.Dispatcher, logger *zap.Logger) *UpgradeSystem {
	return &UpgradeSystem{
		world:           world,
		catalog:         catalog,
		eventDispatcher: eventDispatcher,
		logger:          logger.Named("upgrade"),
	}
}

// Cost — цена следующего уровня: c0 = base, c(n+1) = floor(c(n) * mult).
func (s *UpgradeSystem) Cost(kind component.UpgradeKind) (int, error) {
	def, ok := s.catalog.Get(kind)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUpgrade, kind)
	}
	return CostAt(def.BaseCost, s.catalog.CostMultiplier, s.world.Upgrades.Level(kind)), nil
}

// CostAt считает цену уровня level итеративно, чтобы округление не зависело от pow.
func CostAt(base int, mult float64, level int) int {
	c := base
	for i := 0; i < level; i++ {
		c = int(math.Floor(float64(c) * mult))
	}
	return c
}

// Purchase списывает текущую цену, повышает уровень и применяет эффект ровно один раз.
func (s *UpgradeSystem) Purchase(kind component.UpgradeKind) error {
	def, ok := s.catalog.Get(kind)
	if !ok {
		s.eventDispatcher.Cue(event.CueDenied)
		return fmt.Errorf("%w: %q", ErrUnknownUpgrade, kind)
	}
	p := s.world.Player
	cost, _ := s.Cost(kind)
	if p == nil || p.Money < float64(cost) {
		s.logger.Debug("purchase denied", zap.String("upgrade", string(kind)), zap.Int("cost", cost))
		s.eventDispatcher.Cue(event.CueDenied)
		return fmt.Errorf("%w: %s costs %d", ErrInsufficientFunds, kind, cost)
	}

	p.Money -= float64(cost)
	s.world.Upgrades.Levels[kind]++
	s.apply(def)

	s.logger.Info("upgrade purchased",
		zap.String("upgrade", string(kind)),
		zap.Int("level", s.world.Upgrades.Level(kind)),
		zap.Int("cost", cost),
	)
	s.eventDispatcher.Cue(event.CuePurchase)
	return nil
}

func (s *UpgradeSystem) apply(def *defs.UpgradeDefinition) {
	fx := def.Effect
	ledger := &s.world.Upgrades
	switch def.Target {
	case defs.TargetPlayer:
		p := s.world.Player
		p.BulletDamage += fx.Damage
		p.FireCooldown = scaleCooldown(p.FireCooldown, fx)
		p.Speed += fx.Speed
		p.Health.Grow(fx.Health)
		ledger.PlayerRegen += fx.Regen
	case defs.TargetCentral:
		if c := s.world.Central; c != nil {
			applyTowerEffect(c, fx)
		}
		ledger.CentralRegen += fx.Regen
	case defs.TargetTowers:
		// Башни, построенные позже, получают стандартные статы
		for _, t := range s.world.Towers {
			if t.Alive() {
				applyTowerEffect(t, fx)
			}
		}
	case defs.TargetEconomy:
		ledger.PassiveIncome += fx.Income
	}
}

func applyTowerEffect(t *component.Tower, fx defs.Effect) {
	t.Weapon.Damage += fx.Damage
	t.Weapon.Range += fx.Range
	t.Weapon.Cooldown = scaleCooldown(t.Weapon.Cooldown, fx)
	t.Health.Grow(fx.Health)
}

// scaleCooldown: max(floor, int(cd * factor)); нулевой множитель — без изменений.
func scaleCooldown(cd int, fx defs.Effect) int {
	if fx.CooldownFactor == 0 {
		return cd
	}
	scaled := int(float64(cd) * fx.CooldownFactor)
	if scaled < fx.CooldownFloor {
		scaled = fx.CooldownFloor
	}
	return scaled
}

// Passives — начисления каждого тика: доход и регенерация.
func (s *UpgradeSystem) Passives() {
	ledger := &s.world.Upgrades
	if p := s.world.Player; p != nil {
		p.Money += ledger.PassiveIncome
		p.Heal(ledger.PlayerRegen)
	}
	if c := s.world.Central; c != nil {
		c.Heal(ledger.CentralRegen)
	}
}

// UpgradeEntry — строка меню улучшений.
type UpgradeEntry struct {
	Kind      component.UpgradeKind
	Label     string
	Category  string
	Level     int
	Cost      int
	Increment string // Короткое описание прироста за уровень
	Shortcut  int    // Номер клавиши, 1..9; 0 — без клавиши
}

// Entries возвращает строки меню в порядке каталога.
func (s *UpgradeSystem) Entries() []UpgradeEntry {
	out := make([]UpgradeEntry, 0, len(s.catalog.Upgrades))
	for i, def := range s.catalog.Upgrades {
		level := s.world.Upgrades.Level(def.Kind)
		e := UpgradeEntry{
			Kind:      def.Kind,
			Label:     def.Label,
			Category:  def.Category,
			Level:     level,
			Cost:      CostAt(def.BaseCost, s.catalog.CostMultiplier, level),
			Increment: incrementToken(def.Effect),
		}
		if i < 9 {
			e.Shortcut = i + 1
		}
		out = append(out, e)
	}
	return out
}

func incrementToken(fx defs.Effect) string {
	switch {
	case fx.Damage != 0:
		return fmt.Sprintf("+%g dmg", fx.Damage)
	case fx.Health != 0:
		return fmt.Sprintf("+%g hp", fx.Health)
	case fx.Speed != 0:
		return fmt.Sprintf("+%g spd", fx.Speed)
	case fx.Regen != 0:
		return fmt.Sprintf("+%g/tick", fx.Regen)
	case fx.Income != 0:
		return fmt.Sprintf("+%g$/tick", fx.Income)
	}
	return ""
}
