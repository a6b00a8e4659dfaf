package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewTestProfileIsSilent(t *testing.T) {
	log, err := New("test", "debug")
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewHonoursLevel(t *testing.T) {
	log, err := New("prod", "warn")
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("dev", "chatty")
	require.Error(t, err)
}
