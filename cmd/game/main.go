// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-shape-defense/internal/audio"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/logging"
	"go-shape-defense/internal/state"
	"go-shape-defense/internal/ui"
)

type AppGame struct {
	stateMachine *state.StateMachine
	keys         *ui.KeyReader
	width        int
	height       int
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.keys.Read())
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(ui.NewRenderer(screen))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to TOML config (defaults are built in)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	content, err := defs.Load(cfg.Content.Dir)
	if err != nil {
		logger.Error("content load failed", zap.String("dir", cfg.Content.Dir), zap.Error(err))
		return err
	}

	dispatcher := event.NewDispatcher()
	player := audio.NewPlayer(cfg.Audio, logger)
	if err := player.Init(); err != nil {
		// Без звука игра работает
		logger.Warn("audio disabled", zap.Error(err))
	}
	defer player.Close()
	player.Attach(dispatcher)

	env := state.NewEnv(cfg, content, dispatcher, logger)
	app := &AppGame{
		stateMachine: state.Start(env),
		keys:         ui.NewKeyReader(content.Upgrades),
		width:        int(cfg.Arena.Width),
		height:       int(cfg.Arena.Height),
	}

	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle("Pray for Pointlessness")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(app); err != nil {
		return err
	}
	logger.Info("bye")
	return nil
}
