// cmd/tui/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"go-shape-defense/internal/audio"
	"go-shape-defense/internal/component"
	"go-shape-defense/internal/config"
	"go-shape-defense/internal/defs"
	"go-shape-defense/internal/event"
	"go-shape-defense/internal/logging"
	"go-shape-defense/internal/state"
	"go-shape-defense/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to TOML config (defaults are built in)")
	logPath := flag.String("log", "shape-defense.log", "log file; the terminal is used for the game")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger, err := logging.NewFile(cfg.Logging, *logPath)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	content, err := defs.Load(cfg.Content.Dir)
	if err != nil {
		logger.Error("content load failed", zap.String("dir", cfg.Content.Dir), zap.Error(err))
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	dispatcher := event.NewDispatcher()
	player := audio.NewPlayer(cfg.Audio, logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}
	defer player.Close()
	player.Attach(dispatcher)

	env := state.NewEnv(cfg, content, dispatcher, logger)
	sm := state.Start(env)
	renderer := tui.NewRenderer(screen, component.Bounds{Width: cfg.Arena.Width, Height: cfg.Arena.Height})
	keys := tui.NewKeyMapper(content.Upgrades, renderer.Project)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, screen, sm, keys, renderer, logger); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
