// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/input"
	"go-shape-defense/internal/interfaces"
	"go-shape-defense/internal/render"
	"go-shape-defense/internal/system"
)

var helpLines = []string{
	"== CONTROLS ==",
	"WASD: Move",
	"Mouse Click: Shoot",
	"T: Place Tower (cost 50)",
	"U: Open/Close Upgrade Menu (number keys buy an upgrade)",
	"H: Toggle this Help Overlay",
	"",
	"== GOAL ==",
	"Defend the Central Tower from waves of enemies!",
	"Survive all waves to achieve victory.",
	"Press SPACE to continue...",
}

// CombatState — идёт бой. Оверлеи помощи и улучшений ставят симуляцию на паузу,
// но постройка и покупки работают всегда.
type CombatState struct {
	sm      *StateMachine
	env     *Env
	session interfaces.GameContext
	logger  *zap.Logger

	started      bool
	showHelp     bool
	showUpgrades bool

	message      string
	messageGood  bool
	messageTimer int
}

func NewCombatState(sm *StateMachine, env *Env, session interfaces.GameContext) *CombatState {
	return &CombatState{
		sm:      sm,
		env:     env,
		session: session,
		logger:  env.Logger.Named("combat"),
	}
}

// Enter: при первом входе открывается помощь. После интерлюдий оверлеи не трогаются.
func (g *CombatState) Enter() {
	if !g.started {
		g.started = true
		g.showHelp = true
	}
}

func (g *CombatState) Exit() {}

func (g *CombatState) Phase() component.GamePhase { return component.PhaseCombat }

// Paused — открыт ли оверлей
func (g *CombatState) Paused() bool {
	return g.showHelp || g.showUpgrades
}

// Overlays — открыты ли помощь и меню улучшений
func (g *CombatState) Overlays() (help, upgrades bool) {
	return g.showHelp, g.showUpgrades
}

func (g *CombatState) Update(in input.Intents) {
	g.handleCommands(in)
	g.handleOverlays(in)

	if g.messageTimer > 0 {
		g.messageTimer--
		if g.messageTimer == 0 {
			g.message = ""
		}
	}

	if g.Paused() {
		return
	}

	outcome := g.session.Tick(in)
	switch outcome {
	case system.OutcomeVictory:
		g.finish(component.PhaseVictory)
		return
	case system.OutcomeDefeat:
		g.finish(component.PhaseDefeat)
		return
	}

	if set, ok := g.session.TakeInterlude(); ok {
		g.sm.SetState(NewBriefingState(g.sm, g.env, set, func() {
			g.sm.SetState(g)
		}))
	}
}

func (g *CombatState) handleCommands(in input.Intents) {
	if in.BuildTower {
		if err := g.session.BuildTower(); err != nil {
			g.logger.Debug("build denied", zap.Error(err))
		}
	}
	for _, kind := range in.Purchases {
		g.purchase(kind)
	}
}

func (g *CombatState) purchase(kind component.UpgradeKind) {
	err := g.session.Purchase(kind)
	switch {
	case err == nil:
		g.flash(fmt.Sprintf("%s purchased", g.label(kind)), true)
	case errors.Is(err, system.ErrInsufficientFunds):
		g.flash("Not enough money", false)
	default:
		g.flash("Unknown upgrade", false)
	}
}

func (g *CombatState) label(kind component.UpgradeKind) string {
	for _, e := range g.session.UpgradeEntries() {
		if e.Kind == kind {
			return e.Label
		}
	}
	return string(kind)
}

func (g *CombatState) flash(msg string, good bool) {
	g.message, g.messageGood, g.messageTimer = msg, good, config.UpgradeMessageDuration
}

// handleOverlays: открыт может быть только один оверлей, меню улучшений приоритетнее.
func (g *CombatState) handleOverlays(in input.Intents) {
	switch {
	case g.showUpgrades:
		if in.ToggleUpgrades || in.CloseOverlay {
			g.showUpgrades = false
		}
	case g.showHelp:
		if in.ToggleHelp || in.CloseOverlay || in.Advance {
			g.showHelp = false
		}
	default:
		if in.ToggleUpgrades {
			g.showUpgrades = true
		} else if in.ToggleHelp {
			g.showHelp = true
		}
	}
}

func (g *CombatState) finish(phase component.GamePhase) {
	g.session.Close()
	g.sm.SetState(NewEndState(g.sm, g.env, phase))
}

func (g *CombatState) Draw(sink render.Sink) {
	g.session.Draw(sink)
	if g.showUpgrades {
		sink.DrawUpgradeMenu(g.upgradeMenu())
	}
	if g.showHelp {
		sink.DrawHelp(render.Help{Lines: helpLines})
	}
}

func (g *CombatState) upgradeMenu() render.UpgradeMenu {
	money := g.session.Money()
	entries := g.session.UpgradeEntries()
	m := render.UpgradeMenu{
		Items:       make([]render.UpgradeItem, 0, len(entries)),
		Money:       int(money),
		Message:     g.message,
		MessageGood: g.messageGood,
	}
	for _, e := range entries {
		m.Items = append(m.Items, render.UpgradeItem{
			Category:   e.Category,
			Label:      e.Label,
			Level:      e.Level,
			Cost:       e.Cost,
			Increment:  e.Increment,
			Shortcut:   e.Shortcut,
			Affordable: money >= float64(e.Cost),
		})
	}
	return m
}
