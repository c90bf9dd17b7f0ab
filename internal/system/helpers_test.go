package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/entity"
	"go-shape-defense/internal/event"
)

// fixture — мир с игроком и центральной башней, без врагов.
type fixture struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	content    *defs.Content
	events     *eventLog
}

type eventLog struct {
	got []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.got = append(l.got, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (l *eventLog) cues() []event.Cue {
	var out []event.Cue
	for _, e := range l.got {
		if e.Type == event.SoundCue {
			out = append(out, e.Data.(event.Cue))
		}
	}
	return out
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	content, err := defs.Default()
	require.NoError(t, err)

	w := entity.NewWorld(component.Bounds{Width: 1800, Height: 1100}, 1.0)
	w.Player = &component.Player{
		ID:           w.NewEntity(),
		Position:     component.Position{X: 900, Y: 700},
		Health:       component.NewHealth(50),
		Radius:       20,
		Speed:        5,
		Money:        50,
		BulletDamage: 8,
		BulletSpeed:  9,
		FireCooldown: 18,
		IFramesMax:   60,
	}
	w.Central = &component.Tower{
		ID:       w.NewEntity(),
		Kind:     component.TowerCentral,
		Position: component.Position{X: 900, Y: 550},
		Health:   component.NewHealth(300),
		Weapon:   component.Weapon{Cooldown: 45, Damage: 6, Speed: 7, Range: 350},
		Radius:   50,
	}

	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log,
		event.WaveStarted, event.WaveEnded, event.EnemyKilled, event.TowerDestroyed,
		event.InterludeTriggered, event.Victory, event.Defeat, event.SoundCue,
	)
	return &fixture{world: w, dispatcher: d, content: content, events: log}
}

// spawn создаёт врага по таблице и сразу кладёт его в активный список.
func (f *fixture) spawn(t *testing.T, kind component.EnemyKind, tier int, x, y float64) *component.Enemy {
	t.Helper()
	e, err := NewEnemy(f.world.NewEntity(), f.content.Enemies, kind, tier, x, y, f.world.Difficulty)
	require.NoError(t, err)
	f.world.Enemies = append(f.world.Enemies, e)
	return e
}

func (f *fixture) placeTower(x, y float64) *component.Tower {
	tw := &component.Tower{
		ID:        f.world.NewEntity(),
		Kind:      component.TowerPlaced,
		Position:  component.Position{X: x, Y: y},
		Health:    component.NewHealth(80),
		Weapon:    component.Weapon{Cooldown: 60, Damage: 4, Speed: 5, Range: 200},
		Radius:    25,
		RegenRate: 0.05,
	}
	f.world.AddTower(tw)
	return tw
}

func (f *fixture) enemySystem(t *testing.T) *EnemySystem {
	return NewEnemySystem(f.world, f.dispatcher, zaptest.NewLogger(t))
}
