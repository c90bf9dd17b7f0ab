// internal/state/briefing_state.go
package state

import (
	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/input"
	"go-shape-defense/internal/render"
)

// slideDeck — листаемый набор слайдов
type slideDeck struct {
	set    string
	slides []defs.Slide
	index  int
}

func newSlideDeck(env *Env, set string) slideDeck {
	return slideDeck{set: set, slides: env.Content.Slides[set]}
}

// advance листает вперёд; true, если слайды закончились.
func (d *slideDeck) advance() bool {
	d.index++
	return d.index >= len(d.slides)
}

func (d *slideDeck) draw(sink render.Sink) {
	sink.Clear(config.BackgroundColor)
	if d.index >= len(d.slides) {
		return
	}
	s := d.slides[d.index]
	sink.DrawSlide(render.Slide{
		Set:   d.set,
		Index: d.index,
		Count: len(d.slides),
		Title: s.Title,
		Text:  s.Text,
		Art:   s.Art,
	})
}

// BriefingState показывает вступление или интерлюдию, затем вызывает done.
type BriefingState struct {
	sm   *StateMachine
	deck slideDeck
	done func()
}

func NewBriefingState(sm *StateMachine, env *Env, set string, done func()) *BriefingState {
	return &BriefingState{sm: sm, deck: newSlideDeck(env, set), done: done}
}

func (b *BriefingState) Enter() {}

func (b *BriefingState) Exit() {}

func (b *BriefingState) Phase() component.GamePhase { return component.PhaseBriefing }

func (b *BriefingState) SlideSet() string { return b.deck.set }

func (b *BriefingState) Update(in input.Intents) {
	if in.Advance && b.deck.advance() {
		b.done()
	}
}

func (b *BriefingState) Draw(sink render.Sink) {
	b.deck.draw(sink)
}
