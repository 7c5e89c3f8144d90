// Package app wires the simulation, the audio engine and a frontend into
// one process and supervises their loops.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"cubestorm/internal/audio"
	"cubestorm/internal/config"
	"cubestorm/internal/sim"
)

// Frontend drives the simulation loop. Run blocks until the player exits
// or ctx is done and is called on the goroutine that invoked App.Run.
type Frontend interface {
	Run(ctx context.Context, drv sim.Driver) error
}

type App struct {
	Sim   *sim.Simulation
	Bus   *sim.EventBus
	Audio *audio.Engine // nil when audio is disabled

	log zerolog.Logger
}

// New builds the simulation and, if enabled, the audio engine, and
// subscribes the engine to the simulation's events.
func New(cfg *config.Config, log zerolog.Logger) *App {
	bus := sim.NewEventBus()
	a := &App{
		Sim: sim.New(cfg.Sim.Seed, cfg.Audio.Volume, bus),
		Bus: bus,
		log: log,
	}

	if cfg.Audio.Enabled {
		a.Audio = audio.Open(audio.Options{
			Backend:   audio.Backend(cfg.Audio.Backend),
			SFXPath:   cfg.Audio.SFX,
			MusicPath: cfg.Audio.Music,
			Volume:    a.Sim.Volume(),
		}, log.With().Str("component", "audio").Logger())
		bus.Subscribe(sim.EventShot, func(sim.Event) { a.Audio.PlayEffect() })
		bus.Subscribe(sim.EventVolumeChanged, func(e sim.Event) { a.Audio.SetVolume(e.Data) })
	} else {
		log.Info().Msg("audio disabled")
	}

	a.subscribeLogging()
	return a
}

func (a *App) subscribeLogging() {
	log := a.log.With().Str("component", "sim").Logger()
	a.Bus.Subscribe(sim.EventGameOver, func(e sim.Event) {
		log.Info().Int("score", e.Data).Msg("game over")
	})
	a.Bus.Subscribe(sim.EventRestarted, func(sim.Event) {
		log.Info().Msg("session restarted")
	})
	a.Bus.Subscribe(sim.EventMenuToggled, func(e sim.Event) {
		log.Debug().Stringer("state", sim.State(e.Data)).Msg("menu toggled")
	})
	a.Bus.Subscribe(sim.EventVolumeChanged, func(e sim.Event) {
		log.Debug().Int("volume", e.Data).Msg("volume changed")
	})
	a.Bus.Subscribe(sim.EventEnemyKilled, func(e sim.Event) {
		log.Trace().Stringer("archetype", e.Kind).Int("points", e.Data).Msg("enemy killed")
	})
	a.Bus.Subscribe(sim.EventSpawnDropped, func(e sim.Event) {
		log.Debug().Stringer("pool", sim.PoolID(e.Data)).Msg("pool exhausted")
	})
}

// Run starts the audio loop, runs fe on the calling goroutine and, once
// fe returns, stops the audio loop and waits for it.
func (a *App) Run(ctx context.Context, fe Frontend) error {
	eg, gctx := errgroup.WithContext(ctx)
	if a.Audio != nil {
		eg.Go(func() error {
			return a.Audio.Run(gctx)
		})
	}

	feErr := fe.Run(gctx, a.Sim)
	if a.Audio != nil {
		a.Audio.Shutdown()
	}
	waitErr := eg.Wait()

	c := a.Sim.Counters()
	a.log.Info().
		Stringer("state", c.State).
		Int("score", c.Score).
		Float32("time", c.Time).
		Msg("session ended")

	if feErr != nil {
		return fmt.Errorf("frontend: %w", feErr)
	}
	if waitErr != nil {
		return fmt.Errorf("audio: %w", waitErr)
	}
	return nil
}
