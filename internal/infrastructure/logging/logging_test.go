package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/engine2d/internal/infrastructure/config"
)

func TestNewWriter_Level(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := NewWriter(&bytes.Buffer{}, config.LogConfig{Level: tt.level})
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewWriter_InvalidLevel(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestNewWriter_WritesPrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, config.LogConfig{Level: "info", Prefix: "engine2d"})
	require.NoError(t, err)

	logger.Info("scene switched", "to", "Lose Scene")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "engine2d")
	assert.Contains(t, out, "scene switched")
	assert.Contains(t, out, "Lose Scene")
	assert.NotContains(t, out, "hidden")
}
