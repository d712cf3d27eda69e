package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Warning("Editor", "write failed", map[string]interface{}{
		"path":  "/tmp/x.txt",
		"cause": errors.New("disk full"),
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "Editor", entry["component"])
	assert.Equal(t, "write failed", entry["message"])
	assert.Equal(t, "/tmp/x.txt", entry["path"])
	assert.Equal(t, "disk full", entry["cause"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Editor", "noise", nil)
	log.Info("Editor", "noise", nil)
	assert.Zero(t, buf.Len())

	log.Error("Editor", errors.New("boom"), nil)
	assert.Contains(t, buf.String(), "boom")
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info("x", "y", nil)
	l.Error("x", errors.New("y"), nil)
}
