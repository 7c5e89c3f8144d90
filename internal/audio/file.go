package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// MusicFile is the byte source behind the music decoder. Seek returns the
// new absolute offset; Tell reports the current one.
type MusicFile interface {
	io.ReadSeekCloser
	Tell() (int64, error)
}

type osFile struct {
	*os.File
}

// OpenMusicFile opens path on the local filesystem.
func OpenMusicFile(path string) (MusicFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetUnavailable, err)
	}
	return osFile{f}, nil
}

func (f osFile) Tell() (int64, error) { return f.Seek(0, io.SeekCurrent) }

type memFile struct {
	*bytes.Reader
}

// NewMemoryFile serves music bytes already held in memory.
func NewMemoryFile(data []byte) MusicFile {
	return memFile{bytes.NewReader(data)}
}

func (f memFile) Tell() (int64, error) { return f.Seek(0, io.SeekCurrent) }

func (memFile) Close() error { return nil }
