// internal/state/env.go
package state

import (
	"go.uber.org/zap"

	"go-shape-defense/internal/app"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/interfaces"
)

// Env — общие зависимости всех состояний.
type Env struct {
	Config          *config.Config
	Content         *defs.Content
	EventDispatcher *event.Dispatcher
	Logger          *zap.Logger

	// NewSession создаёт боевую сессию; по умолчанию app.NewGame.
	NewSession func(difficulty float64) interfaces.GameContext
}

// NewEnv собирает окружение с сессиями app.Game.
func NewEnv(cfg *config.Config, content *defs.Content, eventDispatcher *event.Dispatcher, logger *zap.Logger) *Env {
	env := &Env{
		Config:          cfg,
		Content:         content,
		EventDispatcher: eventDispatcher,
		Logger:          logger,
	}
	env.NewSession = func(difficulty float64) interfaces.GameContext {
		return app.NewGame(cfg, content, difficulty, eventDispatcher, logger)
	}
	return env
}

// Start создаёт машину состояний в главном меню.
func Start(env *Env) *StateMachine {
	sm := NewStateMachine(env.EventDispatcher, env.Logger)
	sm.SetState(NewMenuState(sm, env))
	return sm
}
