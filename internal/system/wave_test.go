package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/utils"
)

var defaultLimits = config.WavesConfig{TimeLimitBase: 3600, TimeLimitPerWave: 600, TimeLimitMax: 10800}

func (f *fixture) waves(t *testing.T, table *defs.WaveTable, limits config.WavesConfig) *WaveSystem {
	t.Helper()
	content := *f.content
	content.Waves = table
	return NewWaveSystem(f.world, &content, limits, utils.NewPRNGService(1), f.dispatcher, zaptest.NewLogger(t))
}

func singleWave(kind component.EnemyKind, count, interval, reward int) *defs.WaveTable {
	return &defs.WaveTable{Waves: []defs.WaveDefinition{{
		Steps:         []defs.WaveStep{{Kind: kind, Tier: 1, Count: count}},
		SpawnInterval: interval,
		Reward:        reward,
	}}}
}

// tick — один шаг планировщика с переносом новых врагов в активный список.
func (f *fixture) tick(ws *WaveSystem) {
	ws.Update()
	f.world.Flush()
}

func TestWaveSpawnsOnCadence(t *testing.T) {
	f := newFixture(t)
	ws := f.waves(t, singleWave(component.EnemyTriangle, 4, 75, 10), defaultLimits)

	f.tick(ws)
	require.True(t, f.world.Wave.Running())
	assert.Equal(t, 1, f.events.count(event.WaveStarted))
	assert.Equal(t, 4, f.world.Wave.Remaining)

	for tick := 1; tick <= 300; tick++ {
		f.tick(ws)
		assert.Equal(t, tick/75, len(f.world.Enemies), "tick %d", tick)
	}
	for tick := 0; tick < 200; tick++ {
		f.tick(ws)
	}
	assert.Len(t, f.world.Enemies, 4)
	assert.True(t, f.world.Wave.Running())
	assert.Equal(t, 1, f.world.Wave.StepIndex)

	for _, e := range f.world.Enemies {
		assert.Equal(t, component.EnemyTriangle, e.Kind)
		assert.True(t, e.X == 0 || e.Y == 0 || e.X == 1800 || e.Y == 1100)
	}
}

func TestWaveCompletesOnlyWhenAllEnemiesDead(t *testing.T) {
	f := newFixture(t)
	ws := f.waves(t, singleWave(component.EnemyTriangle, 4, 75, 10), defaultLimits)
	for i := 0; i < 301; i++ {
		f.tick(ws)
	}
	require.Len(t, f.world.Enemies, 4)

	for _, e := range f.world.Enemies[:3] {
		e.Kill()
		f.tick(ws)
		assert.True(t, f.world.Wave.Running())
	}
	assert.Zero(t, f.events.count(event.WaveEnded))

	f.world.Enemies[3].Kill()
	f.tick(ws)

	assert.False(t, f.world.Wave.Running())
	assert.Equal(t, 1, f.world.Wave.Index)
	assert.Equal(t, 60.0, f.world.Player.Money)
	assert.Equal(t, 1, f.events.count(event.WaveEnded))
	assert.Equal(t, 1, f.events.count(event.Victory))
	assert.True(t, ws.Finished())

	// Завершённая таблица больше ничего не делает
	for i := 0; i < 10; i++ {
		f.tick(ws)
	}
	assert.Equal(t, 60.0, f.world.Player.Money)
	assert.Equal(t, 1, f.events.count(event.WaveEnded))
	assert.Equal(t, 1, f.events.count(event.WaveStarted))
}

func TestWaveTimeout(t *testing.T) {
	f := newFixture(t)
	limits := config.WavesConfig{TimeLimitBase: 100, TimeLimitMax: 100}
	ws := f.waves(t, singleWave(component.EnemySquare, 2, 10, 25), limits)

	f.tick(ws) // старт
	for i := 0; i < 100; i++ {
		f.tick(ws)
	}
	require.True(t, f.world.Wave.Running())
	require.Equal(t, 2, f.world.LivingEnemies())

	f.tick(ws)

	assert.False(t, f.world.Wave.Running())
	assert.Equal(t, 1, f.world.Wave.Index)
	assert.Zero(t, f.world.LivingEnemies())
	assert.Equal(t, 75.0, f.world.Player.Money)
	require.Equal(t, 1, f.events.count(event.WaveEnded))
	for _, e := range f.events.got {
		if e.Type == event.WaveEnded {
			assert.True(t, e.Data.(event.WaveData).TimedOut)
		}
	}
}

func TestWaveTimeoutDuringSpawning(t *testing.T) {
	f := newFixture(t)
	limits := config.WavesConfig{TimeLimitBase: 50, TimeLimitMax: 50}
	ws := f.waves(t, singleWave(component.EnemyStar, 10, 20, 5), limits)

	for i := 0; i < 52; i++ {
		f.tick(ws)
	}

	assert.Equal(t, 1, f.world.Wave.Index)
	assert.Equal(t, 1, f.events.count(event.WaveEnded))
	assert.Zero(t, f.world.LivingEnemies())
}

func TestMultiStepWaveAdvancesSteps(t *testing.T) {
	f := newFixture(t)
	table := &defs.WaveTable{Waves: []defs.WaveDefinition{{
		Steps: []defs.WaveStep{
			{Kind: component.EnemyTriangle, Tier: 1, Count: 1},
			{Kind: component.EnemySquare, Tier: 2, Count: 2},
		},
		SpawnInterval: 5,
		Reward:        1,
	}}}
	ws := f.waves(t, table, defaultLimits)

	for i := 0; i < 16; i++ {
		f.tick(ws)
	}
	require.Len(t, f.world.Enemies, 3)
	assert.Equal(t, component.EnemyTriangle, f.world.Enemies[0].Kind)
	assert.Equal(t, component.EnemySquare, f.world.Enemies[1].Kind)
	assert.Equal(t, 2, f.world.Enemies[2].Tier)
}

func TestInterludeFiresOnceThenNextWaveStarts(t *testing.T) {
	f := newFixture(t)
	wave := defs.WaveDefinition{
		Steps:         []defs.WaveStep{{Kind: component.EnemyTriangle, Tier: 1, Count: 1}},
		SpawnInterval: 1,
		Reward:        1,
	}
	table := &defs.WaveTable{
		Waves:      []defs.WaveDefinition{wave, wave},
		Interludes: map[int]string{1: "mid_a"},
	}
	ws := f.waves(t, table, defaultLimits)

	f.tick(ws) // старт
	f.tick(ws) // враг
	f.world.Enemies[0].Kill()
	f.tick(ws) // завершение
	f.world.Compact()

	require.Equal(t, 1, f.events.count(event.InterludeTriggered))
	for _, e := range f.events.got {
		if e.Type == event.InterludeTriggered {
			assert.Equal(t, event.InterludeData{AfterWave: 1, SlideSet: "mid_a"}, e.Data)
		}
	}
	assert.Zero(t, f.events.count(event.Victory))

	f.tick(ws)
	assert.True(t, f.world.Wave.Running())
	assert.Equal(t, 1, f.world.Wave.Index)
	assert.Equal(t, 1, f.events.count(event.InterludeTriggered))
}

func TestTimeLimit(t *testing.T) {
	f := newFixture(t)
	ws := f.waves(t, singleWave(component.EnemyTriangle, 1, 1, 1), defaultLimits)
	assert.Equal(t, 3600, ws.TimeLimit(0))
	assert.Equal(t, 4200, ws.TimeLimit(1))
	assert.Equal(t, 10800, ws.TimeLimit(12))
	assert.Equal(t, 10800, ws.TimeLimit(40))
}

func TestNewWaveSystemNeedsTable(t *testing.T) {
	f := newFixture(t)
	assert.Panics(t, func() {
		f.waves(t, nil, defaultLimits)
	})
}

func TestSignalStrength(t *testing.T) {
	cases := []struct {
		index, total, left int
		want               float64
	}{
		{0, 15, 3, 1.0 / 15},
		{7, 15, 0, 8.0 / 15},
		{14, 15, 2, 14.99 / 15},
		{14, 15, 0, 1.0},
		{15, 15, 0, 1.0},
		{15, 15, 1, 0.999},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, SignalStrength(c.index, c.total, c.left), 1e-9)
	}
}
