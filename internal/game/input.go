package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cubestorm/internal/sim"
)

// Key bindings; any key in a group triggers the intent.
var (
	keysLeft       = []glfw.Key{glfw.KeyLeft, glfw.KeyA}
	keysRight      = []glfw.Key{glfw.KeyRight, glfw.KeyD}
	keysUp         = []glfw.Key{glfw.KeyUp, glfw.KeyW}
	keysDown       = []glfw.Key{glfw.KeyDown, glfw.KeyS}
	keysFire       = []glfw.Key{glfw.KeySpace, glfw.KeyX}
	keysMenu       = []glfw.Key{glfw.KeyTab, glfw.KeyM}
	keysVolumeUp   = []glfw.Key{glfw.KeyEqual, glfw.KeyKPAdd, glfw.KeyPageUp}
	keysVolumeDown = []glfw.Key{glfw.KeyMinus, glfw.KeyKPSubtract, glfw.KeyPageDown}
	keysRestart    = []glfw.Key{glfw.KeyEnter, glfw.KeyKPEnter, glfw.KeyR}
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// anyJustPressed polls every key so each one's edge state stays current.
func (in *Input) anyJustPressed(window *glfw.Window, keys []glfw.Key) bool {
	hit := false
	for _, k := range keys {
		if in.JustPressed(window, k) {
			hit = true
		}
	}
	return hit
}

func held(window *glfw.Window, keys []glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Intents samples the keyboard once per tick.
func (in *Input) Intents(window *glfw.Window) sim.Intents {
	var it sim.Intents
	if held(window, keysLeft) {
		it.MoveX--
	}
	if held(window, keysRight) {
		it.MoveX++
	}
	if held(window, keysUp) {
		it.MoveY++
	}
	if held(window, keysDown) {
		it.MoveY--
	}
	it.Fire = in.anyJustPressed(window, keysFire)
	it.ToggleMenu = in.anyJustPressed(window, keysMenu)
	it.VolumeUp = in.anyJustPressed(window, keysVolumeUp)
	it.VolumeDown = in.anyJustPressed(window, keysVolumeDown)
	it.Restart = in.anyJustPressed(window, keysRestart)
	it.Exit = window.GetKey(glfw.KeyEscape) == glfw.Press || window.ShouldClose()
	return it
}
