package audio

import (
	"math"
	"sync/atomic"
)

// Gain maps a volume level onto a Q8 fixed point factor: 10 is unity,
// 0 is mute.
func Gain(level int) int32 {
	return int32(ClampLevel(level) * 256 / MaxLevel)
}

// Scale applies a Q8 gain to one sample.
func Scale(s int16, gain int32) int16 {
	return int16((int32(s) * gain) >> 8)
}

// SaturatingAdd sums two samples, pinning at the int16 range instead of
// wrapping.
func SaturatingAdd(a, b int16) int16 {
	v := int32(a) + int32(b)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

func ClampLevel(level int) int {
	return max(MinLevel, min(MaxLevel, level))
}

// Mixer combines the music stream, scaled by the volume level, with the
// one-shot effect on top. Volume is read once per Mix call, so a change
// applies from the next buffer period.
type Mixer struct {
	stream *Stream
	sfx    *OneShot
	level  atomic.Int32
}

// NewMixer accepts nil for either source.
func NewMixer(stream *Stream, sfx *OneShot, level int) *Mixer {
	m := &Mixer{stream: stream, sfx: sfx}
	m.SetVolume(level)
	return m
}

func (m *Mixer) SetVolume(level int) {
	m.level.Store(int32(ClampLevel(level)))
}

func (m *Mixer) Volume() int { return int(m.level.Load()) }

// TriggerEffect schedules the one-shot from the start.
func (m *Mixer) TriggerEffect() { m.sfx.Trigger() }

// Mix fills out with one period of interleaved stereo samples. It reports
// whether a pending effect trigger was consumed.
func (m *Mixer) Mix(out []int16) bool {
	m.stream.Fill(out)
	gain := Gain(m.Volume())
	if gain != 256 {
		for i, s := range out {
			out[i] = Scale(s, gain)
		}
	}
	return m.sfx.MixInto(out)
}
