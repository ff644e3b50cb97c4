package logger

import (
	"context"
	"log/slog"

	"github.com/Raimguhinov/alarmlog/pkg/logger/slogpretty"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
)

const queryLog = "Query"

// NewTracer routes pgx query traces into l.
func NewTracer(l *Logger) pgx.QueryTracer {
	return &tracelog.TraceLog{
		Logger:   &Logger{l.Logger},
		LogLevel: tracelog.LogLevelTrace,
	}
}

func (l *Logger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	if msg != queryLog {
		return
	}

	attrs := make([]slog.Attr, 0, len(data))
	for k, v := range data {
		switch k {
		case "sql":
			if q, ok := v.(string); ok {
				attrs = append(attrs, slog.String(k, slogpretty.PrettySQL(q)))
			}
		case "time":
			attrs = append(attrs, slog.Any("duration", v))
		case "err":
			if err, ok := v.(error); ok {
				attrs = append(attrs, Err(err))
			}
		}
	}
	l.Logger.LogAttrs(ctx, translateLevel(level), "pgx."+msg, attrs...)
}

func translateLevel(level tracelog.LogLevel) slog.Level {
	switch level {
	case tracelog.LogLevelTrace:
		return slog.LevelDebug
	case tracelog.LogLevelDebug:
		return slog.LevelDebug
	case tracelog.LogLevelInfo:
		return slog.LevelDebug
	case tracelog.LogLevelWarn:
		return slog.LevelWarn
	case tracelog.LogLevelError:
		return slog.LevelError
	case tracelog.LogLevelNone:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
