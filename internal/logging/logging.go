package logging

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/agenthands/shortlist/internal/config"
)

// New builds the base logger. Unknown levels fall back to info.
func New(w io.Writer, cfg config.LogConfig) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           log.InfoLevel,
	})

	if level, err := log.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
		logger.SetLevel(level)
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		logger.SetFormatter(log.TextFormatter)
	}

	return logger
}

// For returns a child logger tagged with the component name.
func For(base *log.Logger, component string) *log.Logger {
	if base == nil {
		return Discard()
	}
	return base.WithPrefix(component)
}

// Discard returns a logger that drops everything. Handy for tests and for
// components constructed without a logger.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
