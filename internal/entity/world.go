// internal/entity/world.go
package entity

import (
	"go-shape-defense/internal/component"
	"go-shape-defense/internal/types"
)

// World — контекст симуляции: все сущности одной сессии.
// Новые враги и снаряды копятся в pending-списках и попадают в активные
// коллекции только в Flush, поэтому обход внутри тика не видит их.
type World struct {
	Tick       int
	NextID     types.EntityID
	Arena      component.Bounds
	Difficulty float64

	Player      *component.Player
	Central     *component.Tower
	Towers      []*component.Tower // Построенные игроком, в порядке постройки
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile

	pendingEnemies     []*component.Enemy
	pendingProjectiles []*component.Projectile

	Wave     component.WaveProgress
	Upgrades component.UpgradeLedger
}

func NewWorld(arena component.Bounds, difficulty float64) *World {
	return &World{
		NextID:     1,
		Arena:      arena,
		Difficulty: difficulty,
		Wave: component.WaveProgress{
			InterludesShown: make(map[int]bool),
		},
		Upgrades: component.UpgradeLedger{
			Levels: make(map[component.UpgradeKind]int),
		},
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy ставит врага в очередь на добавление.
func (w *World) AddEnemy(e *component.Enemy) {
	w.pendingEnemies = append(w.pendingEnemies, e)
}

// AddProjectile ставит снаряд в очередь на добавление.
func (w *World) AddProjectile(p *component.Projectile) {
	w.pendingProjectiles = append(w.pendingProjectiles, p)
}

// AddTower добавляет построенную башню сразу: постройка происходит до обхода башен.
func (w *World) AddTower(t *component.Tower) {
	w.Towers = append(w.Towers, t)
}

// PendingEnemies — враги, появившиеся в текущем тике
func (w *World) PendingEnemies() []*component.Enemy {
	return w.pendingEnemies
}

// PendingProjectiles — снаряды, выпущенные в текущем тике
func (w *World) PendingProjectiles() []*component.Projectile {
	return w.pendingProjectiles
}

// LivingEnemies считает живых врагов, включая ещё не добавленных.
func (w *World) LivingEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive() {
			n++
		}
	}
	for _, e := range w.pendingEnemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// KillAllEnemies обнуляет здоровье всех врагов (тайм-аут волны).
func (w *World) KillAllEnemies() {
	for _, e := range w.Enemies {
		e.Kill()
	}
	for _, e := range w.pendingEnemies {
		e.Kill()
	}
}

// Compact удаляет мёртвые снаряды, врагов и построенные башни.
// Возвращает удалённые башни, чтобы вызывающий мог сообщить о них.
func (w *World) Compact() (destroyed []*component.Tower) {
	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Alive {
			projectiles = append(projectiles, p)
		}
	}
	clearTail(w.Projectiles, len(projectiles))
	w.Projectiles = projectiles

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive() {
			enemies = append(enemies, e)
		}
	}
	clearTail(w.Enemies, len(enemies))
	w.Enemies = enemies

	towers := w.Towers[:0]
	for _, t := range w.Towers {
		if t.Alive() {
			towers = append(towers, t)
		} else {
			destroyed = append(destroyed, t)
		}
	}
	clearTail(w.Towers, len(towers))
	w.Towers = towers
	return destroyed
}

// Flush переносит pending-сущности в активные коллекции.
func (w *World) Flush() {
	for _, e := range w.pendingEnemies {
		if e.Alive() {
			w.Enemies = append(w.Enemies, e)
		}
	}
	for _, p := range w.pendingProjectiles {
		if p.Alive {
			w.Projectiles = append(w.Projectiles, p)
		}
	}
	w.pendingEnemies = w.pendingEnemies[:0]
	w.pendingProjectiles = w.pendingProjectiles[:0]
}

// clearTail зануляет хвост после in-place фильтрации, чтобы не держать указатели.
func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
