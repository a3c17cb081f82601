package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-term/internal/app"
	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/logging"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/sound"
)

const (
	exitOK = iota
	exitFatal
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load("minesweeper", args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	mines.Log = logger
	logger.Info("starting up")
	logger.WithFields(cfg.Fields()).Debug("config")

	if err := play(logger, cfg); err != nil {
		logger.Errorf("exit reason: %s", err)
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}
	logger.Info("bye")
	return exitOK
}

func play(logger *logrus.Logger, cfg *config.App) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to init terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	player := sound.Silent()
	if cfg.Sound {
		player = sound.New(logger)
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, screen, logger, app.New(logger, screen, cfg, player).Start)
}

// serve runs start on the calling goroutine, so that a panic anywhere in
// the game unwinds through the terminal restore. A side goroutine turns
// cancellation of ctx into an interrupt event for whatever loop is blocked
// on the terminal.
func serve(
	ctx context.Context, screen tcell.Screen, logger logrus.FieldLogger,
	start func(context.Context) error,
) error {
	defer restore(screen, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	err := start(ctx)
	cancel()
	_ = g.Wait()
	return err
}

// restore gives the terminal back, panics included: it must be deferred
// directly so that recover sees the panic.
func restore(screen tcell.Screen, logger logrus.FieldLogger) {
	if r := recover(); r != nil {
		screen.Fini()
		logger.WithField("panic", r).Error("panic")
		panic(r)
	}
	screen.Fini()
}
