// internal/state/end_state.go
package state

import (
	"go-shape-defense/internal/component"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/input"
	"go-shape-defense/internal/render"
)

// EndState — финальные слайды победы или поражения.
// После последнего слайда или по Restart возвращает в главное меню.
type EndState struct {
	sm    *StateMachine
	env   *Env
	phase component.GamePhase
	deck  slideDeck
}

func NewEndState(sm *StateMachine, env *Env, phase component.GamePhase) *EndState {
	set := defs.SlidesDefeat
	if phase == component.PhaseVictory {
		set = defs.SlidesVictory
	}
	return &EndState{sm: sm, env: env, phase: phase, deck: newSlideDeck(env, set)}
}

func (e *EndState) Enter() {}

func (e *EndState) Exit() {}

func (e *EndState) Phase() component.GamePhase { return e.phase }

func (e *EndState) SlideSet() string { return e.deck.set }

func (e *EndState) Update(in input.Intents) {
	if in.Restart || (in.Advance && e.deck.advance()) {
		e.sm.SetState(NewMenuState(e.sm, e.env))
	}
}

func (e *EndState) Draw(sink render.Sink) {
	e.deck.draw(sink)
}
