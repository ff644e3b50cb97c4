package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Raimguhinov/alarmlog/pkg/logger/slogpretty"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// Logger -.
type Logger struct {
	*slog.Logger
}

// New -.
func New(level, env string) *Logger {
	return newWithWriter(os.Stdout, level, env)
}

// NewNop returns a logger that drops every record.
func NewNop() *Logger {
	return &Logger{slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func newWithWriter(w io.Writer, level, env string) *Logger {
	lev := ParseLevel(level)

	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = setupPrettySlog(w, lev)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lev}),
		)
	}

	return &Logger{logger}
}

// ParseLevel maps a config level name onto slog levels, falling back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func setupPrettySlog(w io.Writer, level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(w)

	return slog.New(handler)
}

// With returns a child logger carrying args on every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
