package wheel

import (
	"io"
	"log/slog"
)

// Logger receives debug records from the wheel engine. It discards everything
// until SetLogger is called.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package logger. A nil logger restores the discarding
// default.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	Logger = logger
}
