package sim

// Intents is the input collaborator's output for one tick. Move is a
// continuous direction; the booleans other than Exit are edge-triggered.
type Intents struct {
	MoveX, MoveY float32 // each clamped to [-1, 1]
	Fire         bool
	ToggleMenu   bool
	VolumeUp     bool
	VolumeDown   bool
	Restart      bool
	Exit         bool // level-triggered
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampVolume forces level into [MinVolume, MaxVolume].
func ClampVolume(level int) int { return clamp(level, MinVolume, MaxVolume) }
