package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetupLoggerFallsBackToInfo(t *testing.T) {
	l, err := SetupLogger("verbose", "json", "device-inventory")
	require.NoError(t, err)
	t.Cleanup(func() { Replace(zap.NewNop()) })

	assert.Same(t, l, L())
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestHelpersWriteThroughReplacedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Replace(zap.New(core))
	t.Cleanup(func() { Replace(zap.NewNop()) })

	Info("loaded %d device types", 4)
	Warning("cache disabled: %s", "redis unreachable")
	Error("query failed: %v", "boom")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "loaded 4 device types", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "query failed: boom", entries[2].Message)
}

func TestStdLoggerBridge(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))
	t.Cleanup(func() { Replace(zap.NewNop()) })

	StdLogger(zapcore.WarnLevel).Printf("slow query %dms", 250)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, "slow query 250ms", logs.All()[0].Message)
}
