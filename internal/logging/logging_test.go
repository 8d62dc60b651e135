package logging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"error", LevelError},
		{"warn", LevelWarn},
		{"info", LevelInfo},
		{"debug", LevelDebug},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	log := New(&buf, LevelWarn)

	log.Debug("dropped")
	log.Info("dropped too")
	log.Warn("kept %d", 1)
	log.Error("kept %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "[warn] kept 1")
	assert.Contains(t, out, "[error] kept 2")
}

func TestSetLevel(t *testing.T) {
	var buf strings.Builder
	log := New(&buf, LevelError)

	log.Info("before")
	log.SetLevel(LevelDebug)
	log.Info("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
}
