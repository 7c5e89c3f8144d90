package audio

import (
	"errors"
	"time"
)

const (
	SampleRate     = 44100
	ChannelCount   = 2
	BytesPerSample = 2
	FrameBytes     = ChannelCount * BytesPerSample

	// PeriodFrames is the size of one output buffer handed to the sink.
	PeriodFrames = 2048
	// StagingFrames is the decode staging buffer of the music stream.
	StagingFrames = 4608
)

// Volume levels; the gain table maps them onto Q8 fixed point.
const (
	MinLevel = 0
	MaxLevel = 10
)

var (
	ErrAssetUnavailable = errors.New("audio: asset unavailable")
	ErrMalformedAsset   = errors.New("audio: malformed asset")
	ErrDecodeUnderrun   = errors.New("audio: decode underrun")
	ErrSinkClosed       = errors.New("audio: sink closed")
)

// PeriodDuration is the wall-clock length of one output buffer.
func PeriodDuration() time.Duration {
	return framesDuration(PeriodFrames)
}

func framesDuration(frames int) time.Duration {
	return time.Duration(frames) * time.Second / SampleRate
}
