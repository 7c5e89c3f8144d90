package app

import (
	"context"

	"github.com/rs/zerolog"

	"cubestorm/internal/sim"
)

const (
	autopilotFireEvery  = 10
	autopilotSweepTicks = 60
)

// Headless runs a fixed number of ticks under a deterministic autopilot:
// it sweeps the player left and right, fires every tenth tick and
// restarts as soon as the game is over.
type Headless struct {
	Ticks int
	Log   zerolog.Logger
}

func NewHeadless(ticks int, log zerolog.Logger) *Headless {
	return &Headless{Ticks: ticks, Log: log}
}

// Autopilot returns the intents for tick given the state after the
// previous tick.
func Autopilot(tick int, state sim.State) sim.Intents {
	if state == sim.StateGameOver {
		return sim.Intents{Restart: true}
	}
	in := sim.Intents{Fire: tick%autopilotFireEvery == 0}
	if (tick/autopilotSweepTicks)%2 == 0 {
		in.MoveX = 1
	} else {
		in.MoveX = -1
	}
	return in
}

func (h *Headless) Run(ctx context.Context, drv sim.Driver) error {
	snap := sim.NewSnapshot()
	drv.Fill(snap)

	restarts := 0
	tick := 0
	for ; tick < h.Ticks; tick++ {
		if ctx.Err() != nil {
			break
		}
		in := Autopilot(tick, snap.Counters.State)
		if in.Restart {
			restarts++
		}
		drv.Step(in)
		drv.Fill(snap)
	}

	c := snap.Counters
	h.Log.Info().
		Int("ticks", tick).
		Int("restarts", restarts).
		Stringer("state", c.State).
		Int("score", c.Score).
		Int("health", c.Health).
		Int("enemies", c.Enemies).
		Int("bullets", c.Bullets).
		Int("enemy_bullets", c.EnemyBullets).
		Int("particles", c.Particles).
		Ints("drops", c.Drops[:]).
		Msg("headless run finished")
	return nil
}
