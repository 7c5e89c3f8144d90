package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/oto/v2"
)

// otoSink feeds an oto player through a pipe. The player pulls as the
// device drains, so Write returns only once the previous period has been
// taken.
type otoSink struct {
	ctx    *oto.Context
	player oto.Player
	pw     *io.PipeWriter
}

func newOtoSink() (*otoSink, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatSignedInt16LE)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	<-ready

	pr, pw := io.Pipe()
	player := ctx.NewPlayer(pr)
	player.Play()
	return &otoSink{ctx: ctx, player: player, pw: pw}, nil
}

func (s *otoSink) Write(p []byte) (int, error) {
	n, err := s.pw.Write(p)
	if errors.Is(err, io.ErrClosedPipe) {
		return n, ErrSinkClosed
	}
	return n, err
}

func (s *otoSink) Close() error {
	s.pw.Close()
	return s.player.Close()
}
