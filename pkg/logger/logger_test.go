package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "warn", envDev)

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Error("visible", Err(errors.New("boom")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNew_PrettyLocal(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "debug", envLocal)

	l.With(slog.String("component", "test")).Debug("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), `"component": "test"`)
}

func TestTracer_LogsQueriesOnly(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "debug", envDev)

	l.Log(context.Background(), tracelog.LogLevelInfo, "Connect", map[string]any{"sql": "SELECT 1"})
	assert.Zero(t, buf.Len())

	l.Log(context.Background(), tracelog.LogLevelInfo, queryLog, map[string]any{"sql": "SELECT\n\tid\nFROM alarms"})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "pgx.Query", rec["msg"])
	assert.Equal(t, "SELECT id FROM alarms", rec["sql"])
	assert.Equal(t, "DEBUG", rec["level"])
}
