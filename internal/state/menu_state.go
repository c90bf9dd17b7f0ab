// internal/state/menu_state.go
package state

import (
	"math"

	"go.uber.org/zap"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/input"
	"go-shape-defense/internal/render"
)

const menuHint = "Left/Right: difficulty   Enter: start   Q: quit"

// MenuState — главное меню с ползунком сложности
type MenuState struct {
	sm         *StateMachine
	env        *Env
	difficulty float64
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	return &MenuState{sm: sm, env: env, difficulty: 1.0}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Exit() {}

func (m *MenuState) Phase() component.GamePhase { return component.PhaseMainMenu }

// Difficulty — текущее значение ползунка
func (m *MenuState) Difficulty() float64 { return m.difficulty }

func (m *MenuState) Update(in input.Intents) {
	if in.DifficultyDelta != 0 {
		m.difficulty = ClampDifficulty(m.difficulty + float64(in.DifficultyDelta)*config.DifficultyStep)
	}
	if !in.Start {
		return
	}
	difficulty := m.difficulty
	if in.Difficulty > 0 {
		difficulty = ClampDifficulty(in.Difficulty)
	}
	m.env.Logger.Info("starting game", zap.Float64("difficulty", difficulty))

	session := m.env.NewSession(difficulty)
	combat := NewCombatState(m.sm, m.env, session)
	m.sm.SetState(NewBriefingState(m.sm, m.env, defs.SlidesIntro, func() {
		m.sm.SetState(combat)
	}))
}

func (m *MenuState) Draw(sink render.Sink) {
	sink.Clear(config.MenuBackground)
	sink.DrawMenu(render.Menu{
		Title:      "Pray for Pointlessness",
		Difficulty: m.difficulty,
		Hint:       menuHint,
	})
}

// ClampDifficulty ограничивает сложность диапазоном ползунка и округляет до сотых.
func ClampDifficulty(d float64) float64 {
	d = math.Round(d*100) / 100
	if d < config.MinDifficulty {
		return config.MinDifficulty
	}
	if d > config.MaxDifficulty {
		return config.MaxDifficulty
	}
	return d
}
