package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		level string
		json  bool
		want  zapcore.Level
	}{
		{"", false, zapcore.InfoLevel},
		{"debug", true, zapcore.DebugLevel},
		{"warn", false, zapcore.WarnLevel},
	} {
		logger, err := New(tc.level, tc.json)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(tc.want), "%q", tc.level)
		assert.False(t, logger.Core().Enabled(tc.want-1), "%q", tc.level)
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.ErrorContains(t, err, "logging:")
}

func TestVerbose(t *testing.T) {
	assert.Equal(t, "debug", Verbose("warn", true))
	assert.Equal(t, "warn", Verbose("warn", false))
}
