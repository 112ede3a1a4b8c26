package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferedLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	logger, buf := newBufferedLogger(slog.LevelDebug)

	logger.Debug("debug msg", "k", "v")
	logger.Info("info msg", "items", 3)
	logger.Warn("warn msg")
	logger.Error("error msg", "error", "boom")

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "debug msg")
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "items=3")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "error=boom")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedLogger(slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNewSlogDefault(t *testing.T) {
	require.NotNil(t, NewSlogDefault())
}
