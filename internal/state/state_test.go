package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/input"
	"go-shape-defense/internal/interfaces"
	"go-shape-defense/internal/render"
	"go-shape-defense/internal/system"
)

// fakeSession — управляемая вручную боевая сессия.
type fakeSession struct {
	difficulty float64
	ticks      int
	outcome    system.Outcome
	interlude  string
	money      float64
	built      int
	bought     []component.UpgradeKind
	buyErr     error
	closed     bool
}

func (s *fakeSession) Tick(input.Intents) system.Outcome {
	s.ticks++
	return s.outcome
}

func (s *fakeSession) BuildTower() error {
	s.built++
	return nil
}

func (s *fakeSession) Purchase(kind component.UpgradeKind) error {
	s.bought = append(s.bought, kind)
	return s.buyErr
}

func (s *fakeSession) UpgradeEntries() []system.UpgradeEntry {
	return []system.UpgradeEntry{
		{Kind: "player_attack", Label: "Player  Attack", Category: "PLAYER", Cost: 15, Shortcut: 1},
		{Kind: "passive_income", Label: "Passive Income", Category: "MISC", Cost: 20, Shortcut: 2},
	}
}

func (s *fakeSession) Money() float64 { return s.money }

func (s *fakeSession) TakeInterlude() (string, bool) {
	set := s.interlude
	s.interlude = ""
	return set, set != ""
}

func (s *fakeSession) Draw(sink render.Sink) { sink.Clear(config.BackgroundColor) }

func (s *fakeSession) Close() { s.closed = true }

type harness struct {
	sm      *StateMachine
	env     *Env
	session *fakeSession
	phases  []event.PhaseData
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	content, err := defs.Default()
	require.NoError(t, err)
	h := &harness{}
	d := event.NewDispatcher()
	d.Subscribe(event.PhaseChanged, event.ListenerFunc(func(e event.Event) {
		h.phases = append(h.phases, e.Data.(event.PhaseData))
	}))
	h.env = NewEnv(config.Default(), content, d, zaptest.NewLogger(t))
	h.env.NewSession = func(difficulty float64) interfaces.GameContext {
		h.session = &fakeSession{difficulty: difficulty, money: 50}
		return h.session
	}
	h.sm = Start(h.env)
	return h
}

// skipSlides пролистывает текущий набор слайдов до конца.
func (h *harness) skipSlides(t *testing.T, set string) {
	t.Helper()
	n := len(h.env.Content.Slides[set])
	require.NotZero(t, n, set)
	for i := 0; i < n; i++ {
		h.sm.Update(input.Intents{Advance: true})
	}
}

// enterCombat: меню, вступление, бой с закрытой помощью.
func (h *harness) enterCombat(t *testing.T) *CombatState {
	t.Helper()
	h.sm.Update(input.Intents{Start: true})
	h.skipSlides(t, defs.SlidesIntro)
	combat, ok := h.sm.Current().(*CombatState)
	require.True(t, ok)
	h.sm.Update(input.Intents{CloseOverlay: true})
	return combat
}

func TestMenuToCombat(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, component.PhaseMainMenu, h.sm.Phase())

	h.sm.Update(input.Intents{Start: true})
	require.Equal(t, component.PhaseBriefing, h.sm.Phase())
	require.NotNil(t, h.session)
	assert.Equal(t, 1.0, h.session.difficulty)

	frame := &render.Frame{}
	h.sm.Draw(frame)
	require.NotNil(t, frame.Slide)
	assert.Equal(t, defs.SlidesIntro, frame.Slide.Set)
	assert.Zero(t, frame.Slide.Index)

	h.skipSlides(t, defs.SlidesIntro)
	assert.Equal(t, component.PhaseCombat, h.sm.Phase())
	assert.Zero(t, h.session.ticks)

	require.Len(t, h.phases, 3)
	assert.Equal(t, event.PhaseData{From: component.PhaseMainMenu, To: component.PhaseMainMenu}, h.phases[0])
	assert.Equal(t, event.PhaseData{From: component.PhaseMainMenu, To: component.PhaseBriefing, SlideSet: defs.SlidesIntro}, h.phases[1])
	assert.Equal(t, event.PhaseData{From: component.PhaseBriefing, To: component.PhaseCombat}, h.phases[2])
}

func TestMenuDifficulty(t *testing.T) {
	h := newHarness(t)
	menu := h.sm.Current().(*MenuState)

	h.sm.Update(input.Intents{DifficultyDelta: 1})
	assert.Equal(t, 1.05, menu.Difficulty())
	for i := 0; i < 40; i++ {
		h.sm.Update(input.Intents{DifficultyDelta: 1})
	}
	assert.Equal(t, config.MaxDifficulty, menu.Difficulty())
	for i := 0; i < 40; i++ {
		h.sm.Update(input.Intents{DifficultyDelta: -1})
	}
	assert.Equal(t, config.MinDifficulty, menu.Difficulty())

	frame := &render.Frame{}
	h.sm.Draw(frame)
	require.NotNil(t, frame.Menu)
	assert.Equal(t, 0.5, frame.Menu.Difficulty)
	assert.Contains(t, frame.Menu.Hint, "Q: quit")
	assert.NotContains(t, frame.Menu.Hint, "Esc")

	h.sm.Update(input.Intents{Start: true, Difficulty: 1.337})
	assert.Equal(t, 1.34, h.session.difficulty)
}

func TestClampDifficulty(t *testing.T) {
	cases := map[float64]float64{
		0.1:   0.5,
		0.5:   0.5,
		1.234: 1.23,
		2.0:   2.0,
		9:     2.0,
	}
	for in, want := range cases {
		assert.Equal(t, want, ClampDifficulty(in), "%v", in)
	}
}

func TestHelpShownOnFirstEntryAndPauses(t *testing.T) {
	h := newHarness(t)
	h.sm.Update(input.Intents{Start: true})
	h.skipSlides(t, defs.SlidesIntro)
	combat := h.sm.Current().(*CombatState)

	assert.True(t, combat.Paused())
	h.sm.Update(input.Intents{})
	assert.Zero(t, h.session.ticks)

	frame := &render.Frame{}
	h.sm.Draw(frame)
	assert.NotNil(t, frame.Help)

	// Закрытие помощи и тик в одном обновлении
	h.sm.Update(input.Intents{Advance: true})
	assert.False(t, combat.Paused())
	assert.Equal(t, 1, h.session.ticks)
}

func TestUpgradeOverlay(t *testing.T) {
	h := newHarness(t)
	combat := h.enterCombat(t)
	ticks := h.session.ticks
	h.session.money = 18

	h.sm.Update(input.Intents{ToggleUpgrades: true})
	help, upgrades := combat.Overlays()
	assert.False(t, help)
	assert.True(t, upgrades)
	assert.Equal(t, ticks, h.session.ticks)

	// Помощь не открывается поверх меню улучшений
	h.sm.Update(input.Intents{ToggleHelp: true})
	help, _ = combat.Overlays()
	assert.False(t, help)

	h.sm.Update(input.Intents{Purchases: []component.UpgradeKind{"player_attack"}})
	frame := &render.Frame{}
	h.sm.Draw(frame)
	require.NotNil(t, frame.Upgrades)
	assert.Equal(t, "Player  Attack purchased", frame.Upgrades.Message)
	assert.True(t, frame.Upgrades.MessageGood)
	assert.True(t, frame.Upgrades.Items[0].Affordable)
	assert.False(t, frame.Upgrades.Items[1].Affordable)

	h.session.buyErr = system.ErrInsufficientFunds
	h.sm.Update(input.Intents{Purchases: []component.UpgradeKind{"passive_income"}})
	h.sm.Draw(frame)
	assert.Equal(t, "Not enough money", frame.Upgrades.Message)
	assert.False(t, frame.Upgrades.MessageGood)

	for i := 0; i < config.UpgradeMessageDuration; i++ {
		h.sm.Update(input.Intents{})
	}
	h.sm.Draw(frame)
	assert.Empty(t, frame.Upgrades.Message)

	h.sm.Update(input.Intents{CloseOverlay: true})
	assert.False(t, combat.Paused())
	assert.Equal(t, ticks+1, h.session.ticks)
}

func TestBuildWhilePaused(t *testing.T) {
	h := newHarness(t)
	h.enterCombat(t)
	h.sm.Update(input.Intents{ToggleUpgrades: true})
	h.sm.Update(input.Intents{BuildTower: true})
	assert.Equal(t, 1, h.session.built)
}

func TestInterludeReturnsToSameCombat(t *testing.T) {
	h := newHarness(t)
	combat := h.enterCombat(t)

	h.session.interlude = "mid_a"
	h.sm.Update(input.Intents{})
	require.Equal(t, component.PhaseBriefing, h.sm.Phase())
	assert.Equal(t, "mid_a", h.phases[len(h.phases)-1].SlideSet)

	h.skipSlides(t, "mid_a")
	assert.Same(t, combat, h.sm.Current())
	// Помощь второй раз не показывается
	assert.False(t, combat.Paused())
}

func TestVictoryAndRestart(t *testing.T) {
	h := newHarness(t)
	h.enterCombat(t)
	first := h.session

	first.outcome = system.OutcomeVictory
	h.sm.Update(input.Intents{})
	assert.Equal(t, component.PhaseVictory, h.sm.Phase())
	assert.True(t, first.closed)
	assert.Equal(t, defs.SlidesVictory, h.phases[len(h.phases)-1].SlideSet)

	h.sm.Update(input.Intents{Restart: true})
	assert.Equal(t, component.PhaseMainMenu, h.sm.Phase())

	h.sm.Update(input.Intents{Start: true})
	assert.NotSame(t, first, h.session)
}

func TestDefeatSlidesReturnToMenu(t *testing.T) {
	h := newHarness(t)
	h.enterCombat(t)
	h.session.outcome = system.OutcomeDefeat
	h.sm.Update(input.Intents{})
	require.Equal(t, component.PhaseDefeat, h.sm.Phase())

	h.skipSlides(t, defs.SlidesDefeat)
	assert.Equal(t, component.PhaseMainMenu, h.sm.Phase())
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.sm.Done())
	h.sm.Update(input.Intents{Quit: true, Start: true})
	assert.True(t, h.sm.Done())
	assert.Equal(t, component.PhaseMainMenu, h.sm.Phase())
	h.sm.Quit()
	assert.True(t, h.sm.Done())
}
