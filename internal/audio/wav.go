package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Clip is a decoded sound effect: interleaved stereo signed 16-bit samples.
type Clip struct {
	Samples []int16
}

// Frames returns the number of stereo frames in the clip.
func (c *Clip) Frames() int {
	if c == nil {
		return 0
	}
	return len(c.Samples) / ChannelCount
}

// LoadClipFile reads a RIFF/WAVE file from disk.
func LoadClipFile(path string) (*Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetUnavailable, err)
	}
	clip, err := ParseClip(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return clip, nil
}

// ParseClip locates the data chunk of a RIFF/WAVE image, skipping any
// number of preceding chunks of arbitrary size. The samples are assumed to
// be 16-bit stereo; the fmt chunk is not consulted.
func ParseClip(data []byte) (*Clip, error) {
	if len(data) < 12 || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		return nil, fmt.Errorf("%w: missing RIFF/WAVE header", ErrMalformedAsset)
	}

	off := 12
	for off+8 <= len(data) {
		id := data[off : off+4]
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8
		if string(id) == "data" {
			end := body + size
			if end > len(data) || end < body {
				// Truncated files keep whatever samples are present.
				end = len(data)
			}
			return &Clip{Samples: decodePCM16(data[body:end])}, nil
		}
		next := body + size + size&1
		if next <= off {
			break
		}
		off = next
	}
	return nil, fmt.Errorf("%w: no data chunk", ErrMalformedAsset)
}

// ReadClip is ParseClip over a reader.
func ReadClip(r io.Reader) (*Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetUnavailable, err)
	}
	return ParseClip(data)
}

// decodePCM16 converts little-endian bytes into whole stereo frames.
func decodePCM16(b []byte) []int16 {
	n := len(b) / FrameBytes * ChannelCount
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}
	return out
}

func encodePCM16(dst []byte, src []int16) {
	for i, s := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(s))
	}
}
