package audio

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/hajimehoshi/go-mp3"
)

// Decoder yields interleaved stereo signed 16-bit little-endian PCM and can
// rewind to the start of the stream.
type Decoder interface {
	io.Reader
	io.Seeker
}

// DecoderOpener builds a Decoder on top of an opened music file.
type DecoderOpener func(MusicFile) (Decoder, error)

// OpenMP3 decodes MPEG-1/2 layer III. The output rate follows the file.
func OpenMP3(f MusicFile) (Decoder, error) {
	d, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("%w: mp3: %v", ErrMalformedAsset, err)
	}
	return d, nil
}

// Stream is the looping music source. Fill is called from the audio loop
// only; Play and Stop may be called from anywhere.
type Stream struct {
	file    MusicFile
	dec     Decoder
	playing atomic.Bool

	staging []byte
	pos     int // read offset into staging
	end     int // valid bytes in staging

	metrics *Metrics
}

// NewStream opens a decoder over file. The stream starts stopped.
func NewStream(file MusicFile, open DecoderOpener) (*Stream, error) {
	dec, err := open(file)
	if err != nil {
		return nil, err
	}
	return &Stream{
		file:    file,
		dec:     dec,
		staging: make([]byte, StagingFrames*FrameBytes),
	}, nil
}

func (s *Stream) Play() {
	if s != nil {
		s.playing.Store(true)
	}
}

func (s *Stream) Stop() {
	if s != nil {
		s.playing.Store(false)
	}
}

func (s *Stream) Playing() bool { return s != nil && s.playing.Load() }

// Fill writes len(out) samples: decoded music followed by zeros if the
// decoder could not supply enough. It returns how many samples were
// decoded. A stopped or unopened stream fills silence and returns 0.
func (s *Stream) Fill(out []int16) int {
	if s == nil || s.dec == nil || !s.playing.Load() {
		clear(out)
		return 0
	}

	n := 0
	for n < len(out) {
		if s.pos >= s.end {
			if err := s.refill(); err != nil {
				s.metrics.underrun()
				break
			}
		}
		avail := (s.end - s.pos) / BytesPerSample
		k := min(avail, len(out)-n)
		for i := 0; i < k; i++ {
			b := s.staging[s.pos+i*2:]
			out[n+i] = int16(uint16(b[0]) | uint16(b[1])<<8)
		}
		n += k
		s.pos += k * BytesPerSample
	}
	clear(out[n:])
	return n
}

// refill reloads the staging buffer, rewinding the decoder once when it
// reports end of stream.
func (s *Stream) refill() error {
	s.pos, s.end = 0, 0
	m, err := io.ReadFull(s.dec, s.staging)
	if m == 0 && errors.Is(err, io.EOF) {
		if _, serr := s.dec.Seek(0, io.SeekStart); serr != nil {
			return fmt.Errorf("%w: rewind: %v", ErrDecodeUnderrun, serr)
		}
		s.metrics.loop()
		m, err = io.ReadFull(s.dec, s.staging)
	}
	m -= m % BytesPerSample
	if m == 0 {
		if err == nil {
			err = io.ErrNoProgress
		}
		return fmt.Errorf("%w: %v", ErrDecodeUnderrun, err)
	}
	s.end = m
	return nil
}

// Close releases the decoder's underlying file.
func (s *Stream) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	s.playing.Store(false)
	s.dec = nil
	return s.file.Close()
}
