// internal/defs/loader.go
package defs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"go-shape-defense/internal/component"
)

//go:embed data/*.yaml
var embedded embed.FS

// ErrInvalidContent — таблицы загрузились, но нарушают правила игры.
var ErrInvalidContent = errors.New("invalid content")

// Content — все игровые таблицы одной сессии.
type Content struct {
	Enemies  EnemyTable
	Waves    *WaveTable
	Upgrades *Catalog
	Slides   SlideSets
}

// Load читает таблицы из каталога dir. Пустой dir — встроенные данные.
func Load(dir string) (*Content, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, fmt.Errorf("embedded content: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys)
}

// LoadFS читает enemies.yaml, waves.yaml, upgrades.yaml и slides.yaml из fsys и проверяет их.
func LoadFS(fsys fs.FS) (*Content, error) {
	var ef enemiesFile
	if err := readYAML(fsys, "enemies.yaml", &ef); err != nil {
		return nil, err
	}
	var waves WaveTable
	if err := readYAML(fsys, "waves.yaml", &waves); err != nil {
		return nil, err
	}
	var catalog Catalog
	if err := readYAML(fsys, "upgrades.yaml", &catalog); err != nil {
		return nil, err
	}
	catalog.index()
	var sf slidesFile
	if err := readYAML(fsys, "slides.yaml", &sf); err != nil {
		return nil, err
	}

	c := &Content{
		Enemies:  newEnemyTable(ef),
		Waves:    &waves,
		Upgrades: &catalog,
		Slides:   sf.Slides,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default возвращает встроенные таблицы.
func Default() (*Content, error) {
	return Load("")
}

func readYAML(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Validate проверяет связность таблиц. Любая ошибка фатальна для запуска.
func (c *Content) Validate() error {
	if err := c.validateEnemies(); err != nil {
		return err
	}
	if err := c.validateWaves(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	for _, set := range []string{SlidesIntro, SlidesVictory, SlidesDefeat} {
		if len(c.Slides[set]) == 0 {
			return fmt.Errorf("%w: slide set %q is empty", ErrInvalidContent, set)
		}
	}
	return nil
}

func (c *Content) validateEnemies() error {
	for _, kind := range []component.EnemyKind{
		component.EnemyTriangle, component.EnemySquare, component.EnemyStar, component.EnemyBoss,
	} {
		def, ok := c.Enemies[kind]
		if !ok {
			return fmt.Errorf("%w: enemy %q is not defined", ErrInvalidContent, kind)
		}
		for tier := 1; tier <= MaxTier; tier++ {
			if def.Health.At(tier) <= 0 {
				return fmt.Errorf("%w: enemy %q tier %d has no health", ErrInvalidContent, kind, tier)
			}
			if def.Ranged && def.ShotCooldown.Ticks(tier) < 1 {
				return fmt.Errorf("%w: enemy %q tier %d shot cooldown below 1", ErrInvalidContent, kind, tier)
			}
		}
	}
	for kind := range c.Enemies {
		if !knownKind(kind) {
			return fmt.Errorf("%w: unknown enemy kind %q", ErrInvalidContent, kind)
		}
	}
	return nil
}

func (c *Content) validateWaves() error {
	if c.Waves == nil || len(c.Waves.Waves) == 0 {
		return fmt.Errorf("%w: wave table is empty", ErrInvalidContent)
	}
	for i, w := range c.Waves.Waves {
		if len(w.Steps) == 0 {
			return fmt.Errorf("%w: wave %d has no steps", ErrInvalidContent, i+1)
		}
		if w.SpawnInterval < 1 {
			return fmt.Errorf("%w: wave %d spawn interval below 1", ErrInvalidContent, i+1)
		}
		for j, s := range w.Steps {
			if !knownKind(s.Kind) {
				return fmt.Errorf("%w: wave %d step %d: unknown enemy kind %q", ErrInvalidContent, i+1, j+1, s.Kind)
			}
			if s.Tier < 1 || s.Tier > MaxTier {
				return fmt.Errorf("%w: wave %d step %d: tier %d out of range", ErrInvalidContent, i+1, j+1, s.Tier)
			}
			if s.Count < 1 {
				return fmt.Errorf("%w: wave %d step %d: count must be positive", ErrInvalidContent, i+1, j+1)
			}
			if s.Kind == component.EnemyBoss && s.Count != 1 {
				return fmt.Errorf("%w: wave %d step %d: boss step must spawn exactly one", ErrInvalidContent, i+1, j+1)
			}
		}
	}
	for index, set := range c.Waves.Interludes {
		if index < 1 || index >= len(c.Waves.Waves) {
			return fmt.Errorf("%w: interlude index %d outside the wave table", ErrInvalidContent, index)
		}
		if len(c.Slides[set]) == 0 {
			return fmt.Errorf("%w: interlude at wave %d: unknown slide set %q", ErrInvalidContent, index, set)
		}
	}
	return nil
}

// validateCatalog требует base*(mult-1) >= 1: тогда floor-итерация цены строго растёт.
func (c *Content) validateCatalog() error {
	cat := c.Upgrades
	if cat == nil || len(cat.Upgrades) == 0 {
		return fmt.Errorf("%w: upgrade catalog is empty", ErrInvalidContent)
	}
	if cat.CostMultiplier <= 1 {
		return fmt.Errorf("%w: cost multiplier %.2f must exceed 1", ErrInvalidContent, cat.CostMultiplier)
	}
	seen := make(map[component.UpgradeKind]bool)
	for _, u := range cat.Upgrades {
		if u.Kind == "" {
			return fmt.Errorf("%w: upgrade without kind", ErrInvalidContent)
		}
		if seen[u.Kind] {
			return fmt.Errorf("%w: duplicate upgrade %q", ErrInvalidContent, u.Kind)
		}
		seen[u.Kind] = true
		if float64(u.BaseCost)*(cat.CostMultiplier-1) < 1 {
			return fmt.Errorf("%w: upgrade %q base cost %d too low for multiplier", ErrInvalidContent, u.Kind, u.BaseCost)
		}
		switch u.Target {
		case TargetPlayer, TargetCentral, TargetTowers, TargetEconomy:
		default:
			return fmt.Errorf("%w: upgrade %q has unknown target %q", ErrInvalidContent, u.Kind, u.Target)
		}
		if f := u.Effect.CooldownFactor; f < 0 || f > 1 || math.IsNaN(f) {
			return fmt.Errorf("%w: upgrade %q cooldown factor %.2f out of range", ErrInvalidContent, u.Kind, f)
		}
		// Перезарядка после улучшения не может стать нулевой
		if u.Effect.CooldownFactor > 0 && u.Effect.CooldownFloor < 1 {
			return fmt.Errorf("%w: upgrade %q needs cooldown_floor >= 1", ErrInvalidContent, u.Kind)
		}
	}
	return nil
}

func knownKind(kind component.EnemyKind) bool {
	switch kind {
	case component.EnemyTriangle, component.EnemySquare, component.EnemyStar, component.EnemyBoss:
		return true
	}
	return false
}
