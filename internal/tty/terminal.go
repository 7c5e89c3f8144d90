package tty

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"cubestorm/internal/sim"
	"cubestorm/internal/view"
)

// StatusRows is the height of the status panel under the play field.
const StatusRows = 3

// FrameDuration is the tick cadence. Terminals have no vsync to pace on.
const FrameDuration = time.Second / 60

// Terminal is the tcell frontend.
type Terminal struct {
	Log zerolog.Logger
	// NewScreen builds the screen; nil means tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)
	Frame     time.Duration
}

func NewTerminal(log zerolog.Logger) *Terminal {
	return &Terminal{Log: log, NewScreen: tcell.NewScreen, Frame: FrameDuration}
}

// Run drives drv once per frame until the player exits or ctx is done.
func (t *Terminal) Run(ctx context.Context, drv sim.Driver) error {
	newScreen := t.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frame := t.Frame
	if frame <= 0 {
		frame = FrameDuration
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	var keys Keys
	snap := sim.NewSnapshot()
	var scene view.Scene

	for {
		select {
		case <-ctx.Done():
			t.Log.Info().Msg("terminal frontend cancelled")
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.Press(ev.Key(), ev.Rune())
			case *tcell.EventResize:
				screen.Sync()
			}
			continue
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			return nil
		}

		in := keys.Take()
		if in.Exit {
			t.Log.Info().Msg("exit requested")
			return nil
		}
		drv.Step(in)
		drv.Fill(snap)

		cols, rows := screen.Size()
		fbW, fbH := Framebuffer(cols, rows, StatusRows)
		if fbW > 0 {
			cam := view.Follow(snap.Player, float32(fbW)/float32(fbH))
			scene.Build(snap, cam.Projector(fbW, fbH), snap.Counters.Time)
			DrawScene(screen, &scene, fbW, fbH)
		}
		DrawStatus(screen, rows-StatusRows, view.StatusLines(snap.Counters))
		screen.Show()
	}
}
