// internal/tui/loop.go
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"go-shape-defense/internal/config"
	"go-shape-defense/internal/input"
	"go-shape-defense/internal/render"
)

// Machine — то, что цикл терминала делает с машиной состояний.
type Machine interface {
	Update(in input.Intents)
	Draw(sink render.Sink)
	Done() bool
}

// Run крутит симуляцию с частотой config.TickRate до выхода или отмены ctx.
// Экран должен быть уже инициализирован.
func Run(ctx context.Context, screen tcell.Screen, sm Machine, keys *KeyMapper, renderer *Renderer, logger *zap.Logger) error {
	events := make(chan tcell.Event, 64)
	go pump(ctx, screen.PollEvent, events)

	ticker := time.NewTicker(time.Second / config.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			keys.Handle(ev)
		case <-ticker.C:
			sm.Update(keys.Next())
			if sm.Done() {
				logger.Info("terminal session finished")
				return nil
			}
			sm.Draw(renderer)
			screen.Show()
		}
	}
}

// pump перекладывает события poll в out. Канал закрывается, когда poll вернул nil
// (экран закрыт). После отмены ctx pump выходит, не дожидаясь читателя.
func pump(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
