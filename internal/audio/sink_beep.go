package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// beepSink hands PCM to the beep speaker through a pipe-backed streamer.
type beepSink struct {
	pw     *io.PipeWriter
	stream *pipeStreamer
}

func newBeepSink() (*beepSink, error) {
	sr := beep.SampleRate(SampleRate)
	if err := speaker.Init(sr, PeriodFrames); err != nil {
		return nil, fmt.Errorf("beep speaker: %w", err)
	}
	pr, pw := io.Pipe()
	st := &pipeStreamer{r: pr}
	speaker.Play(st)
	return &beepSink{pw: pw, stream: st}, nil
}

func (s *beepSink) Write(p []byte) (int, error) {
	n, err := s.pw.Write(p)
	if errors.Is(err, io.ErrClosedPipe) {
		return n, ErrSinkClosed
	}
	return n, err
}

func (s *beepSink) Close() error {
	s.pw.Close()
	speaker.Close()
	return nil
}

// pipeStreamer converts little-endian stereo int16 into beep's float
// frames.
type pipeStreamer struct {
	r   io.Reader
	buf []byte
	err error
}

func (p *pipeStreamer) Stream(samples [][2]float64) (int, bool) {
	if p.err != nil {
		return 0, false
	}
	need := len(samples) * FrameBytes
	if cap(p.buf) < need {
		p.buf = make([]byte, need)
	}
	b := p.buf[:need]
	got, err := io.ReadFull(p.r, b)
	frames := got / FrameBytes
	for i := 0; i < frames; i++ {
		f := b[i*FrameBytes:]
		l := int16(uint16(f[0]) | uint16(f[1])<<8)
		r := int16(uint16(f[2]) | uint16(f[3])<<8)
		samples[i][0] = float64(l) / 32768
		samples[i][1] = float64(r) / 32768
	}
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			p.err = err
		} else {
			p.err = io.EOF
		}
		return frames, frames > 0
	}
	return frames, true
}

func (p *pipeStreamer) Err() error {
	if errors.Is(p.err, io.EOF) {
		return nil
	}
	return p.err
}
