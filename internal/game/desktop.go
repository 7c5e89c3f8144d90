package game

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"cubestorm/internal/sim"
	"cubestorm/internal/view"
)

// Desktop is the windowed OpenGL frontend. One simulation tick runs per
// presented frame; vsync paces the loop.
type Desktop struct {
	Log    zerolog.Logger
	Width  int
	Height int
}

func NewDesktop(log zerolog.Logger) *Desktop {
	return &Desktop{Log: log, Width: WindowWidth, Height: WindowHeight}
}

// Run owns the window until the player exits, the window closes or ctx is
// cancelled. It must be called from the main goroutine.
func (d *Desktop) Run(ctx context.Context, drv sim.Driver) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(d.Width, d.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	d.Log.Info().Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).Msg("opengl ready")

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()
	snap := sim.NewSnapshot()
	hud := newTitleHUD(window)
	var scene view.Scene

	for !window.ShouldClose() {
		if ctx.Err() != nil {
			d.Log.Info().Msg("desktop frontend cancelled")
			return nil
		}

		glfw.PollEvents()
		in := input.Intents(window)
		if in.Exit {
			d.Log.Info().Msg("exit requested")
			return nil
		}

		drv.Step(in)
		drv.Fill(snap)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimised; keep ticking so audio and the clock stay live.
			window.SwapBuffers()
			continue
		}

		cam := view.Follow(snap.Player, float32(fbW)/float32(fbH))
		scene.Build(snap, cam.Projector(fbW, fbH), snap.Counters.Time)

		rend.BeginFrame(fbW, fbH, view.Palette.Sky)
		rend.DrawScene(&scene, fbW, fbH)
		hud.Update(snap.Counters)

		window.SwapBuffers()
	}
	return nil
}
