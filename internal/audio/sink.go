package audio

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . Sink

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Sink is the output device. Write blocks until the device can take the
// buffer, which is what cadences the audio loop.
type Sink interface {
	Write(p []byte) (int, error)
	Close() error
}

type Backend string

const (
	BackendOto  Backend = "oto"
	BackendBeep Backend = "beep"
	BackendNone Backend = "none"
)

// NewSink opens the named backend.
func NewSink(b Backend) (Sink, error) {
	switch b {
	case BackendOto:
		return newOtoSink()
	case BackendBeep:
		return newBeepSink()
	case BackendNone, "":
		return NewNullSink(), nil
	}
	return nil, fmt.Errorf("unknown audio backend %q", b)
}

// nullSink discards samples at the rate a real device would consume them.
type nullSink struct {
	closed atomic.Bool
	sleep  func(time.Duration)
}

func NewNullSink() Sink {
	return &nullSink{sleep: time.Sleep}
}

func (s *nullSink) Write(p []byte) (int, error) {
	if s.closed.Load() {
		return 0, ErrSinkClosed
	}
	s.sleep(framesDuration(len(p) / FrameBytes))
	return len(p), nil
}

func (s *nullSink) Close() error {
	s.closed.Store(true)
	return nil
}
