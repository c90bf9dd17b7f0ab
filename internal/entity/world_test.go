package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shape-defense/internal/component"
)

func newEnemy(w *World, hp float64) *component.Enemy {
	return &component.Enemy{ID: w.NewEntity(), Health: component.NewHealth(hp)}
}

func TestNewEntityIsMonotonic(t *testing.T) {
	w := NewWorld(component.Bounds{Width: 100, Height: 100}, 1)
	a, b := w.NewEntity(), w.NewEntity()
	assert.Less(t, uint32(a), uint32(b))
	assert.NotZero(t, a)
}

func TestPendingEntitiesInvisibleUntilFlush(t *testing.T) {
	w := NewWorld(component.Bounds{Width: 100, Height: 100}, 1)
	e := newEnemy(w, 10)
	w.AddEnemy(e)
	w.AddProjectile(&component.Projectile{ID: w.NewEntity(), Alive: true})

	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Projectiles)
	assert.Equal(t, 1, w.LivingEnemies())
	assert.Len(t, w.PendingEnemies(), 1)

	w.Flush()
	assert.Equal(t, []*component.Enemy{e}, w.Enemies)
	assert.Len(t, w.Projectiles, 1)
	assert.Empty(t, w.PendingEnemies())
	assert.Empty(t, w.PendingProjectiles())
}

func TestFlushDropsDeadPending(t *testing.T) {
	w := NewWorld(component.Bounds{Width: 100, Height: 100}, 1)
	e := newEnemy(w, 10)
	w.AddEnemy(e)
	w.AddProjectile(&component.Projectile{ID: w.NewEntity()})
	w.KillAllEnemies()

	w.Flush()
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Projectiles)
}

func TestCompactRemovesDeadKeepsOrder(t *testing.T) {
	w := NewWorld(component.Bounds{Width: 100, Height: 100}, 1)
	a, b, c := newEnemy(w, 10), newEnemy(w, 10), newEnemy(w, 10)
	w.Enemies = []*component.Enemy{a, b, c}
	b.Kill()

	alive := &component.Tower{ID: w.NewEntity(), Health: component.NewHealth(5)}
	dead := &component.Tower{ID: w.NewEntity(), Health: component.NewHealth(5)}
	dead.Kill()
	w.AddTower(alive)
	w.AddTower(dead)

	w.Projectiles = []*component.Projectile{{Alive: false}, {Alive: true}}

	destroyed := w.Compact()

	assert.Equal(t, []*component.Enemy{a, c}, w.Enemies)
	assert.Equal(t, []*component.Tower{alive}, w.Towers)
	require.Len(t, destroyed, 1)
	assert.Same(t, dead, destroyed[0])
	require.Len(t, w.Projectiles, 1)
	assert.True(t, w.Projectiles[0].Alive)
}

func TestKillAllEnemies(t *testing.T) {
	w := NewWorld(component.Bounds{Width: 100, Height: 100}, 1)
	w.Enemies = []*component.Enemy{newEnemy(w, 10), newEnemy(w, 20)}
	w.AddEnemy(newEnemy(w, 5))

	w.KillAllEnemies()
	assert.Zero(t, w.LivingEnemies())
}
