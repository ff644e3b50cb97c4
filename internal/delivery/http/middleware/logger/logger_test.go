package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Raimguhinov/alarmlog/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LogsStatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(New(l))
	r.Get("/alarm/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hot"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alarm/?min_temp=15", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	var line map[string]any
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		if _, ok := entry["status"]; ok {
			line = entry
		}
	}
	require.NotNil(t, line, "no request line logged")

	assert.Equal(t, float64(http.StatusTeapot), line["status"])
	assert.Equal(t, float64(3), line["bytes"])
	assert.Equal(t, "middleware/logger", line["component"])
	assert.NotEmpty(t, line["request_id"])
	assert.Contains(t, line["msg"], "GET http://example.com/alarm/?min_temp=15")
}
