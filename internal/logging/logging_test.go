package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSlogLogger_ForwardsLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	logger.Debug("debug message", "client", 1)
	logger.Info("info message", "tx", 2)
	logger.Warn("warn message")
	logger.Error("error message", "error", "boom")

	out := buf.String()
	require.Contains(t, out, "debug message")
	require.Contains(t, out, "client=1")
	require.Contains(t, out, "info message")
	require.Contains(t, out, "tx=2")
	require.Contains(t, out, "warn message")
	require.Contains(t, out, "error message")
	require.Contains(t, out, "error=boom")
}

func TestZapLogger_ForwardsLevelsAndFields(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	logger := NewZap(zap.New(core).Sugar())

	logger.Debug("debug message", "client", 1)
	logger.Info("info message", "tx", 2)
	logger.Warn("warn message")
	logger.Error("error message")

	entries := observed.All()
	require.Len(t, entries, 4)
	require.Equal(t, "debug message", entries[0].Message)
	require.Equal(t, zap.DebugLevel, entries[0].Level)
	require.Equal(t, int64(1), entries[0].ContextMap()["client"])
	require.Equal(t, "info message", entries[1].Message)
	require.Equal(t, zap.WarnLevel, entries[2].Level)
	require.Equal(t, zap.ErrorLevel, entries[3].Level)
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	logger := NewNop()

	// Must not panic, and Fatal must not exit.
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	logger.Fatal("fatal")
}
