package audio

import "sync/atomic"

// OneShot plays a clip from the start each time it is triggered.
//
// Trigger may be called from any goroutine. The audio loop observes it at
// the start of the next buffer period, so a trigger lands at most one
// period late. Retriggering while playing restarts the clip.
type OneShot struct {
	clip    *Clip
	trigger atomic.Bool

	// owned by the audio loop
	cursor  int // frames already played
	playing bool
}

func NewOneShot(clip *Clip) *OneShot {
	return &OneShot{clip: clip}
}

// Trigger requests playback from position zero.
func (o *OneShot) Trigger() {
	if o == nil {
		return
	}
	o.trigger.Store(true)
}

// Playing reports whether the clip is mid-playback. Audio loop only.
func (o *OneShot) Playing() bool { return o != nil && o.playing }

// MixInto adds up to len(out)/2 frames of the clip onto out with saturating
// addition. It returns true when a pending trigger was consumed.
func (o *OneShot) MixInto(out []int16) bool {
	if o == nil {
		return false
	}
	started := o.trigger.Swap(false)
	if started {
		o.cursor = 0
		o.playing = true
	}
	total := o.clip.Frames()
	if !o.playing || total == 0 {
		o.playing = false
		return started
	}

	frames := min(len(out)/ChannelCount, total-o.cursor)
	src := o.clip.Samples[o.cursor*ChannelCount : (o.cursor+frames)*ChannelCount]
	for i, s := range src {
		out[i] = SaturatingAdd(out[i], s)
	}
	o.cursor += frames

	if o.cursor >= total {
		o.playing = false
		o.cursor = 0
	}
	return started
}
