package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":       zerolog.InfoLevel,
		"debug":  zerolog.DebugLevel,
		" WARN ": zerolog.WarnLevel,
		"error":  zerolog.ErrorLevel,
	}

	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("node", "Body/Hair").Msg("no counterpart")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "no counterpart")
	assert.Contains(t, out, "node=Body/Hair")
	assert.NotContains(t, out, "\x1b[", "no color when not a terminal")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "verbose")
	assert.Error(t, err)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
