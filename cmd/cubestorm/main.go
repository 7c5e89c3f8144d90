package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"cubestorm/internal/app"
	"cubestorm/internal/config"
	"cubestorm/internal/game"
	"cubestorm/internal/logging"
	"cubestorm/internal/tty"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cubestorm: %v\n", err)
		os.Exit(2)
	}

	log := logging.New(os.Stderr, cfg.Log.Level)
	if cfg.File != "" {
		log.Info().Str("file", cfg.File).Msg("config loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, log)
	log.Info().
		Str("frontend", cfg.Frontend).
		Uint32("seed", cfg.Sim.Seed).
		Bool("audio", cfg.Audio.Enabled).
		Msg("starting")

	if err := a.Run(ctx, frontend(cfg, log)); err != nil {
		log.Error().Err(err).Msg("exiting")
		stop()
		os.Exit(1)
	}
}

func frontend(cfg *config.Config, log zerolog.Logger) app.Frontend {
	switch cfg.Frontend {
	case config.FrontendTTY:
		return tty.NewTerminal(log)
	case config.FrontendHeadless:
		return app.NewHeadless(cfg.Headless.Ticks, log)
	default:
		return game.NewDesktop(log)
	}
}
