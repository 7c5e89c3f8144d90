package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"Warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "%q", in)
	}
}

func TestNewJSONCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(&buf, "debug")
	log.Trace().Msg("hidden")
	log.Debug().Int("score", 30).Msg("enemy killed")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "enemy killed", entry["message"])
	assert.EqualValues(t, 30, entry["score"])
	_, err := uuid.Parse(entry["run"].(string))
	assert.NoError(t, err)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")
	log.Info().Msg("quiet")
	log.Warn().Msg("asset missing")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "asset missing")
	assert.Contains(t, out, "run=")
}
