package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgoodale/echo-mod09ga/pkg/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{input: "debug", expected: zerolog.DebugLevel},
		{input: "info", expected: zerolog.InfoLevel},
		{input: "warn", expected: zerolog.WarnLevel},
		{input: "warning", expected: zerolog.WarnLevel},
		{input: "error", expected: zerolog.ErrorLevel},
		{input: "ERROR", expected: zerolog.ErrorLevel},
		{input: "disabled", expected: zerolog.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	_, err := parseLogLevel("loud")
	assert.Error(t, err)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(&config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestTestLoggerCapturesMessages(t *testing.T) {
	log := NewTestLogger()

	log.Info("plain message")
	log.WarnWithFields("with fields", map[string]interface{}{"page": 3})
	log.WithField("tile", "h09v05").Error("derived message")
	log.WithError(assert.AnError).Warn("wrapped error")

	messages := log.GetMessages()
	require.Len(t, messages, 4)

	assert.True(t, log.HasMessage("plain message"))
	assert.Equal(t, 3, messages[1].Fields["page"])
	assert.Equal(t, "h09v05", messages[2].Fields["tile"])
	assert.Equal(t, assert.AnError.Error(), messages[3].Fields["error"])

	assert.Len(t, log.GetMessagesByLevel("WARN"), 2)

	log.Clear()
	assert.Empty(t, log.GetMessages())
}
