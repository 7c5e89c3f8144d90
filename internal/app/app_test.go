package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cubestorm/internal/config"
	"cubestorm/internal/sim"
)

func testConfig(audioOn bool) *config.Config {
	return &config.Config{
		Frontend: config.FrontendHeadless,
		Sim:      config.SimConfig{Seed: sim.DefaultSeed},
		Headless: config.HeadlessConfig{Ticks: 120},
		Audio: config.AudioConfig{
			Enabled: audioOn,
			Backend: "none",
			Volume:  sim.DefaultVolume,
		},
	}
}

type frontendFunc func(ctx context.Context, drv sim.Driver) error

func (f frontendFunc) Run(ctx context.Context, drv sim.Driver) error { return f(ctx, drv) }

func TestRunHeadlessWithNullAudio(t *testing.T) {
	a := New(testConfig(true), zerolog.Nop())
	require.NotNil(t, a.Audio)

	err := a.Run(context.Background(), NewHeadless(120, zerolog.Nop()))
	require.NoError(t, err)

	assert.InDelta(t, 120*sim.TickDelta, a.Sim.Counters().Time, 0.05)
	assert.False(t, a.Audio.Running())
}

func TestRunWithoutAudio(t *testing.T) {
	a := New(testConfig(false), zerolog.Nop())
	assert.Nil(t, a.Audio)

	steps := 0
	err := a.Run(context.Background(), frontendFunc(func(_ context.Context, drv sim.Driver) error {
		for range 5 {
			drv.Step(sim.Intents{})
			steps++
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 5, steps)
}

func TestRunWrapsFrontendError(t *testing.T) {
	boom := errors.New("no display")
	a := New(testConfig(true), zerolog.Nop())

	err := a.Run(context.Background(), frontendFunc(func(context.Context, sim.Driver) error {
		return boom
	}))
	require.ErrorIs(t, err, boom)
	assert.False(t, a.Audio.Running())
}

func TestVolumeEventReachesMixer(t *testing.T) {
	a := New(testConfig(true), zerolog.Nop())
	assert.Equal(t, sim.DefaultVolume, a.Audio.Mixer().Volume())

	a.Sim.Step(sim.Intents{ToggleMenu: true})
	a.Sim.Step(sim.Intents{VolumeUp: true})
	a.Sim.Step(sim.Intents{VolumeUp: true})

	assert.Equal(t, sim.DefaultVolume+2, a.Audio.Mixer().Volume())
}

func TestGameOverIsLogged(t *testing.T) {
	var buf bytes.Buffer
	a := New(testConfig(false), zerolog.New(&buf))

	a.Bus.Emit(sim.Event{Type: sim.EventGameOver, Data: 420})

	assert.Contains(t, buf.String(), `"score":420`)
	assert.Contains(t, buf.String(), `"message":"game over"`)
}

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name  string
		tick  int
		state sim.State
		want  sim.Intents
	}{
		{"fires on tenth tick", 0, sim.StatePlaying, sim.Intents{Fire: true, MoveX: 1}},
		{"holds fire between", 3, sim.StatePlaying, sim.Intents{MoveX: 1}},
		{"sweeps back", 65, sim.StatePlaying, sim.Intents{MoveX: -1}},
		{"fires while sweeping back", 70, sim.StatePlaying, sim.Intents{Fire: true, MoveX: -1}},
		{"restarts after game over", 40, sim.StateGameOver, sim.Intents{Restart: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Autopilot(tt.tick, tt.state))
		})
	}
}

func TestHeadlessStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := sim.New(sim.DefaultSeed, sim.DefaultVolume, nil)
	require.NoError(t, NewHeadless(1000, zerolog.Nop()).Run(ctx, s))
	assert.Zero(t, s.Counters().Time)
}

func TestHeadlessLogsSummary(t *testing.T) {
	var buf bytes.Buffer
	s := sim.New(sim.DefaultSeed, sim.DefaultVolume, nil)
	require.NoError(t, NewHeadless(30, zerolog.New(&buf)).Run(context.Background(), s))

	assert.Contains(t, buf.String(), `"ticks":30`)
	assert.Contains(t, buf.String(), "headless run finished")
	assert.Positive(t, s.Counters().Bullets)
}
