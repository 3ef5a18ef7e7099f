package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-parallax/internal/debug"
)

// run owns the terminal for the lifetime of the demo. Terminal events are
// read on one goroutine and consumed by the frame loop on another, so the
// view only ever sees scroll events from the frame loop.
func run(opts demoOptions) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	g.Go(func() error {
		// PollEvent returns nil once the screen is finalized.
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()
		defer cancel()
		debug.Log("demo: started")
		err := newDemo(screen, opts).loop(ctx, events)
		debug.Log("demo: stopped")
		return err
	})

	return g.Wait()
}
