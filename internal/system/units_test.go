package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/input"
	"go-shape-defense/internal/render"
)

func TestPlayerMovesPerAxisAndStaysInArena(t *testing.T) {
	f := newFixture(t)
	ps := NewPlayerSystem(f.world, f.dispatcher)
	p := f.world.Player

	ps.Update(input.Intents{MoveX: 1, MoveY: -1})
	assert.Equal(t, 905.0, p.X)
	assert.Equal(t, 695.0, p.Y)

	// Величина оси не важна, только знак
	ps.Update(input.Intents{MoveX: -7})
	assert.Equal(t, 900.0, p.X)

	p.X, p.Y = 22, 1078
	ps.Update(input.Intents{MoveX: -1, MoveY: 1})
	assert.Equal(t, 20.0, p.X)
	assert.Equal(t, 1080.0, p.Y)
}

func TestPlayerFireCooldown(t *testing.T) {
	f := newFixture(t)
	ps := NewPlayerSystem(f.world, f.dispatcher)
	fire := input.Intents{Fire: true, AimX: 900, AimY: 0}

	ps.Update(fire)
	require.Len(t, f.world.PendingProjectiles(), 1)
	shot := f.world.PendingProjectiles()[0]
	assert.True(t, shot.Friendly)
	assert.Equal(t, 8.0, shot.Damage)
	assert.Equal(t, 9.0, shot.Speed)
	assert.InDelta(t, -1.0, shot.DY, 1e-9)

	for i := 0; i < 17; i++ {
		ps.Update(fire)
	}
	assert.Len(t, f.world.PendingProjectiles(), 1)
	ps.Update(fire)
	assert.Len(t, f.world.PendingProjectiles(), 2)
}

func TestPlayerDoesNotFireAtItself(t *testing.T) {
	f := newFixture(t)
	ps := NewPlayerSystem(f.world, f.dispatcher)
	ps.Update(input.Intents{Fire: true, AimX: 900, AimY: 700})
	assert.Empty(t, f.world.PendingProjectiles())
}

func TestPlayerIFrames(t *testing.T) {
	f := newFixture(t)
	ps := NewPlayerSystem(f.world, f.dispatcher)
	p := f.world.Player

	DamagePlayer(p, 10)
	assert.Equal(t, 40.0, p.Value)
	assert.Equal(t, 60, p.IFrames)
	DamagePlayer(p, 10)
	assert.Equal(t, 40.0, p.Value)

	for i := 0; i < 60; i++ {
		ps.Update(input.Intents{})
	}
	assert.False(t, p.Invincible())
	DamagePlayer(p, 10)
	assert.Equal(t, 30.0, p.Value)
}

func TestTowerFiresAtNearestEnemyInRange(t *testing.T) {
	f := newFixture(t)
	ts := NewTowerSystem(f.world, f.dispatcher)
	f.spawn(t, component.EnemyTriangle, 1, 900, 250)
	f.spawn(t, component.EnemyTriangle, 1, 900, 300)

	ts.Update()

	shots := f.world.PendingProjectiles()
	require.Len(t, shots, 1)
	s := shots[0]
	assert.True(t, s.Friendly)
	assert.Equal(t, 6.0, s.Damage)
	// Точка вылета: радиус башни плюс отступ
	assert.InDelta(t, 900.0, s.X, 1e-9)
	assert.InDelta(t, 550.0-58, s.Y, 1e-9)
	assert.InDelta(t, -1.0, s.DY, 1e-9)
	assert.True(t, f.world.Central.Firing.Active())
	assert.Equal(t, []event.Cue{event.CueShot}, f.events.cues())
	assert.Equal(t, 45, f.world.Central.Weapon.Timer)

	for i := 0; i < 44; i++ {
		ts.Update()
	}
	assert.Len(t, f.world.PendingProjectiles(), 1)
	ts.Update()
	assert.Len(t, f.world.PendingProjectiles(), 2)
}

func TestTowerIgnoresEnemiesOutOfRange(t *testing.T) {
	f := newFixture(t)
	ts := NewTowerSystem(f.world, f.dispatcher)
	f.spawn(t, component.EnemyTriangle, 1, 900, 200) // ровно 350

	ts.Update()
	assert.Empty(t, f.world.PendingProjectiles())
	assert.True(t, f.world.Central.Weapon.Ready())
}

func TestPlacedTowerRegenerates(t *testing.T) {
	f := newFixture(t)
	ts := NewTowerSystem(f.world, f.dispatcher)
	tw := f.placeTower(100, 100)
	tw.Value = 10

	for i := 0; i < 20; i++ {
		ts.Update()
	}
	assert.InDelta(t, 11.0, tw.Value, 1e-9)

	// Центральная башня сама не лечится
	f.world.Central.Value = 100
	ts.Update()
	assert.Equal(t, 100.0, f.world.Central.Value)
}

func TestDamageTowerFlash(t *testing.T) {
	f := newFixture(t)
	ts := NewTowerSystem(f.world, f.dispatcher)
	tw := f.placeTower(100, 100)

	DamageTower(tw, 5, f.dispatcher)
	assert.Equal(t, 75.0, tw.Value)
	assert.True(t, tw.Damaged.Active())
	for i := 0; i < 20; i++ {
		ts.Update()
	}
	assert.False(t, tw.Damaged.Active())
}

func TestProjectilesMoveAndLeaveArena(t *testing.T) {
	f := newFixture(t)
	ps := NewProjectileSystem(f.world)
	inside := &component.Projectile{Position: component.Position{X: 100, Y: 100}, DX: 1, Speed: 5, Alive: true}
	leaving := &component.Projectile{Position: component.Position{X: 1798, Y: 100}, DX: 1, Speed: 5, Alive: true}
	f.world.Projectiles = append(f.world.Projectiles, inside, leaving)

	ps.Update()

	assert.Equal(t, 105.0, inside.X)
	assert.True(t, inside.Alive)
	assert.False(t, leaving.Alive)
}

func TestRenderFrame(t *testing.T) {
	f := newFixture(t)
	f.placeTower(100, 100)
	e := f.spawn(t, component.EnemyStar, 1, 300, 300)
	e.HitTimer = 3
	f.world.Projectiles = append(f.world.Projectiles,
		&component.Projectile{Position: component.Position{X: 1, Y: 1}, Radius: 5, Alive: true},
		&component.Projectile{Position: component.Position{X: 2, Y: 2}, Radius: 5},
	)
	f.world.Player.IFrames = 7

	rs := NewRenderSystem(f.world, 15)
	frame := &render.Frame{}
	rs.Draw(frame)

	require.Len(t, frame.Sprites, 4)
	assert.Equal(t, f.world.Central.ID, frame.Sprites[0].ID)
	assert.Equal(t, render.ShapeStar, frame.Sprites[2].Shape)
	assert.True(t, frame.Sprites[2].Hit)
	player := frame.Sprites[3]
	assert.Equal(t, f.world.Player.ID, player.ID)
	assert.True(t, player.Flicker)
	assert.Len(t, frame.Shots, 1)

	require.NotNil(t, frame.HUD)
	assert.Equal(t, 1, frame.HUD.Wave)
	assert.Equal(t, 15, frame.HUD.Waves)
	assert.Equal(t, 50, frame.HUD.Money)
	assert.InDelta(t, 1.0/15, frame.HUD.SignalStrength, 1e-9)
}

func TestDefeatWhenCentralTowerFalls(t *testing.T) {
	f := newFixture(t)
	ss := NewStateSystem(f.world, f.dispatcher, zaptest.NewLogger(t))

	assert.Equal(t, OutcomeNone, ss.Update())
	f.world.Central.Kill()
	assert.Equal(t, OutcomeDefeat, ss.Update())
	assert.Equal(t, OutcomeDefeat, ss.Update())
	assert.Equal(t, 1, f.events.count(event.Defeat))
}

func TestVictoryResolvesAtEndOfTick(t *testing.T) {
	f := newFixture(t)
	ss := NewStateSystem(f.world, f.dispatcher, zaptest.NewLogger(t))

	f.dispatcher.Dispatch(event.Event{Type: event.Victory})
	assert.Equal(t, OutcomeNone, ss.Current())
	assert.Equal(t, OutcomeVictory, ss.Update())

	// Исход окончательный
	f.world.Player.Kill()
	assert.Equal(t, OutcomeVictory, ss.Update())
	assert.Zero(t, f.events.count(event.Defeat))

	ss.Detach()
	assert.Equal(t, "victory", ss.Current().String())
}

func TestDefeatOverridesVictoryInSameTick(t *testing.T) {
	f := newFixture(t)
	ss := NewStateSystem(f.world, f.dispatcher, zaptest.NewLogger(t))

	f.dispatcher.Dispatch(event.Event{Type: event.Victory})
	f.world.Central.Kill()

	assert.Equal(t, OutcomeDefeat, ss.Update())
	assert.Equal(t, OutcomeDefeat, ss.Update())
	assert.Equal(t, 1, f.events.count(event.Defeat))
}
