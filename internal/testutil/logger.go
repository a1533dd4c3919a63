package testutil

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/dtroode/gucfolio/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, int(slog.LevelDebug))
}

// MakeBufferLogger returns a logger whose output can be inspected.
func MakeBufferLogger() (*logger.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return logger.NewWithWriter(buf, int(slog.LevelDebug)), buf
}
