package tty

import (
	"github.com/gdamore/tcell/v2"

	"cubestorm/internal/sim"
)

// Keys accumulates key presses between ticks. Terminals report presses
// only, so every key, movement included, is a one-tick impulse.
type Keys struct {
	pending sim.Intents
}

// Press folds one key event into the pending intents. It reports whether
// the key was recognised.
func (k *Keys) Press(key tcell.Key, r rune) bool {
	p := &k.pending
	switch key {
	case tcell.KeyLeft:
		p.MoveX = -1
	case tcell.KeyRight:
		p.MoveX = 1
	case tcell.KeyUp:
		p.MoveY = 1
	case tcell.KeyDown:
		p.MoveY = -1
	case tcell.KeyTab:
		p.ToggleMenu = true
	case tcell.KeyEnter:
		p.Restart = true
	case tcell.KeyPgUp:
		p.VolumeUp = true
	case tcell.KeyPgDn:
		p.VolumeDown = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.Exit = true
	case tcell.KeyRune:
		return k.rune(r)
	default:
		return false
	}
	return true
}

func (k *Keys) rune(r rune) bool {
	p := &k.pending
	switch r {
	case 'a', 'A':
		p.MoveX = -1
	case 'd', 'D':
		p.MoveX = 1
	case 'w', 'W':
		p.MoveY = 1
	case 's', 'S':
		p.MoveY = -1
	case ' ', 'x', 'X':
		p.Fire = true
	case 'm', 'M':
		p.ToggleMenu = true
	case 'r', 'R':
		p.Restart = true
	case '+', '=':
		p.VolumeUp = true
	case '-', '_':
		p.VolumeDown = true
	case 'q', 'Q':
		p.Exit = true
	default:
		return false
	}
	return true
}

// Take returns the intents for the next tick and clears all but Exit,
// which stays latched.
func (k *Keys) Take() sim.Intents {
	in := k.pending
	k.pending = sim.Intents{Exit: in.Exit}
	return in
}
