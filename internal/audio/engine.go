package audio

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Engine is the audio loop: mix one period, encode, block on the sink,
// repeat. It shares nothing with the simulation beyond the mixer's atomic
// trigger and volume and its own shutdown flag.
type Engine struct {
	mixer   *Mixer
	sink    Sink
	log     zerolog.Logger
	metrics *Metrics

	shutdown atomic.Bool
	silent   atomic.Bool
	running  atomic.Bool

	frames []int16
	pcm    []byte
}

// NewEngine wires mixer to sink. metrics may be nil.
func NewEngine(mixer *Mixer, sink Sink, metrics *Metrics, log zerolog.Logger) *Engine {
	if mixer.stream != nil {
		mixer.stream.metrics = metrics
	}
	return &Engine{
		mixer:   mixer,
		sink:    sink,
		log:     log,
		metrics: metrics,
		frames:  make([]int16, PeriodFrames*ChannelCount),
		pcm:     make([]byte, PeriodFrames*FrameBytes),
	}
}

func (e *Engine) Mixer() *Mixer { return e.mixer }

// PlayEffect triggers the one-shot effect.
func (e *Engine) PlayEffect() { e.mixer.TriggerEffect() }

func (e *Engine) SetVolume(level int) { e.mixer.SetVolume(level) }

// Shutdown asks Run to return after the period in flight.
func (e *Engine) Shutdown() { e.shutdown.Store(true) }

// Silent reports whether the sink failed and output has stopped.
func (e *Engine) Silent() bool { return e.silent.Load() }

func (e *Engine) Running() bool { return e.running.Load() }

// Run drives the loop until Shutdown or ctx is done. A sink failure is
// logged and ends the loop in silent mode; it is not returned. The sink
// and music stream are closed on the way out.
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return errors.New("audio engine already running")
	}
	defer e.running.Store(false)
	defer e.close()

	e.mixer.stream.Play()
	e.log.Debug().Int("period_frames", PeriodFrames).Int("volume", e.mixer.Volume()).Msg("audio loop started")

	var periods int64
	for !e.shutdown.Load() && ctx.Err() == nil {
		if e.Step() != nil {
			break
		}
		periods++
	}
	e.log.Debug().Int64("periods", periods).Bool("silent", e.Silent()).Msg("audio loop stopped")
	return nil
}

// Step mixes and writes a single period.
func (e *Engine) Step() error {
	if e.silent.Load() {
		return ErrSinkClosed
	}
	if e.mixer.Mix(e.frames) {
		e.metrics.sfxPlay()
	}
	encodePCM16(e.pcm, e.frames)
	if _, err := e.sink.Write(e.pcm); err != nil {
		e.silent.Store(true)
		e.log.Warn().Err(err).Msg("audio sink failed, continuing without sound")
		return err
	}
	e.metrics.buffer()
	return nil
}

func (e *Engine) close() {
	if err := e.sink.Close(); err != nil {
		e.log.Debug().Err(err).Msg("closing audio sink")
	}
	if err := e.mixer.stream.Close(); err != nil {
		e.log.Debug().Err(err).Msg("closing music stream")
	}
}
