package httpserver

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Options(t *testing.T) {
	s := New(http.NotFoundHandler(),
		Addr("127.0.0.1", "0"),
		ReadTimeout(time.Second),
		WriteTimeout(2*time.Second),
		IdleTimeout(3*time.Second),
		ShutdownTimeout(time.Second),
	)

	assert.Equal(t, "127.0.0.1:0", s.Addr())
	assert.Equal(t, time.Second, s.server.ReadTimeout)
	assert.Equal(t, 2*time.Second, s.server.WriteTimeout)
	assert.Equal(t, 3*time.Second, s.server.IdleTimeout)

	require.NoError(t, s.Shutdown())

	select {
	case err := <-s.Notify():
		assert.True(t, errors.Is(err, http.ErrServerClosed))
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
