// internal/interfaces/game_context.go
package interfaces

import (
	"go-shape-defense/internal/component"
	"go-shape-defense/internal/input"
	"go-shape-defense/internal/render"
	"go-shape-defense/internal/system"
)

// GameContext — то, что состояние боя использует от игровой сессии.
type GameContext interface {
	Tick(in input.Intents) system.Outcome
	BuildTower() error
	Purchase(kind component.UpgradeKind) error
	UpgradeEntries() []system.UpgradeEntry
	Money() float64
	TakeInterlude() (string, bool)
	Draw(sink render.Sink)
	Close()
}
