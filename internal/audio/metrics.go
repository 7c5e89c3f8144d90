package audio

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "cubestorm/internal/audio"

// Metrics counts audio loop activity on the global OTel meter provider,
// which is a no-op unless the process installs one. A nil *Metrics records
// nothing.
type Metrics struct {
	buffers   metric.Int64Counter
	underruns metric.Int64Counter
	loops     metric.Int64Counter
	sfxPlays  metric.Int64Counter
}

func NewMetrics() (*Metrics, error) {
	return newMetrics(otel.Meter(instrumentationName))
}

func newMetrics(m metric.Meter) (*Metrics, error) {
	var (
		am  Metrics
		err error
	)
	am.buffers, err = m.Int64Counter(
		"audio.buffers",
		metric.WithDescription("Output buffers written to the sink"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating buffers counter: %w", err)
	}
	am.underruns, err = m.Int64Counter(
		"audio.underruns",
		metric.WithDescription("Music refills that produced no samples"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating underruns counter: %w", err)
	}
	am.loops, err = m.Int64Counter(
		"audio.loops",
		metric.WithDescription("Times the music stream rewound to its start"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating loops counter: %w", err)
	}
	am.sfxPlays, err = m.Int64Counter(
		"audio.sfx.plays",
		metric.WithDescription("Sound effect triggers consumed by the mixer"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sfx counter: %w", err)
	}
	return &am, nil
}

func (m *Metrics) buffer() {
	if m != nil {
		m.buffers.Add(context.Background(), 1)
	}
}

func (m *Metrics) underrun() {
	if m != nil {
		m.underruns.Add(context.Background(), 1)
	}
}

func (m *Metrics) loop() {
	if m != nil {
		m.loops.Add(context.Background(), 1)
	}
}

func (m *Metrics) sfxPlay() {
	if m != nil {
		m.sfxPlays.Add(context.Background(), 1)
	}
}
