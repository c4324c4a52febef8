package observability

import (
	"log/slog"
	"os"
	"strings"
)

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json (default), text
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// InitLogger builds the process logger and installs it as the slog default.
// Unknown levels fall back to info; the gateway logs JSON unless text is
// asked for explicitly.
func InitLogger(cfg LogConfig) *slog.Logger {
	level, ok := levels[strings.ToLower(cfg.Level)]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
