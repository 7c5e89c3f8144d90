package audio

import (
	"github.com/rs/zerolog"
)

// Options selects assets and the output backend.
type Options struct {
	Backend   Backend
	SFXPath   string
	MusicPath string
	Volume    int
}

// Open assembles an engine from opts. Missing or malformed assets and an
// unavailable device are logged and degrade to silence; the returned
// engine is always usable.
func Open(opts Options, log zerolog.Logger) *Engine {
	var clip *Clip
	if opts.SFXPath != "" {
		c, err := LoadClipFile(opts.SFXPath)
		if err != nil {
			log.Warn().Err(err).Str("path", opts.SFXPath).Msg("sound effect disabled")
		} else {
			clip = c
			log.Debug().Str("path", opts.SFXPath).Int("frames", c.Frames()).Msg("sound effect loaded")
		}
	}

	var stream *Stream
	if opts.MusicPath != "" {
		stream = openMusic(opts.MusicPath, log)
	}

	sink, err := NewSink(opts.Backend)
	if err != nil {
		log.Warn().Err(err).Str("backend", string(opts.Backend)).Msg("audio device unavailable, output discarded")
		sink = NewNullSink()
	}

	metrics, err := NewMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("audio metrics disabled")
	}

	return NewEngine(NewMixer(stream, NewOneShot(clip), opts.Volume), sink, metrics, log)
}

func openMusic(path string, log zerolog.Logger) *Stream {
	f, err := OpenMusicFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("music disabled")
		return nil
	}
	s, err := NewStream(f, OpenMP3)
	if err != nil {
		f.Close()
		log.Warn().Err(err).Str("path", path).Msg("music disabled")
		return nil
	}
	return s
}
