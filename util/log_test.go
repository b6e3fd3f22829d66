package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceSwitch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)
	defer DisableTrace()

	Trace("dropped %d", 1)
	assert.Equal(t, 0, logs.Len())

	EnableTrace()
	Trace("kept %d", 2)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept 2", logs.All()[0].Message)
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level       string
		development bool
		wantErr     bool
	}{
		{"info", false, false},
		{"debug", true, false},
		{"warn", false, false},
		{"loud", false, true},
	}

	for _, tc := range tests {
		l, err := NewLogger(tc.level, tc.development)
		if tc.wantErr {
			assert.Error(t, err, tc.level)
			continue
		}
		require.NoError(t, err, tc.level)
		assert.NotNil(t, l)
	}
}

func TestClampF32(t *testing.T) {
	assert.Equal(t, float32(1), ClampF32(3, -1, 1))
	assert.Equal(t, float32(-1), ClampF32(-3, -1, 1))
	assert.Equal(t, float32(0.5), ClampF32(0.5, -1, 1))
}
