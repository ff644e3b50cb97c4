package storage

import (
	"context"
	"testing"

	"github.com/Raimguhinov/alarmlog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromURL_Memory(t *testing.T) {
	s, err := NewFromURL(context.Background(), "memory://", logger.NewNop())
	require.NoError(t, err)
	defer s.Close()

	assert.NotNil(t, s.Alarms)
	assert.NotNil(t, s.Users)
}

func TestNewFromURL_UnknownScheme(t *testing.T) {
	_, err := NewFromURL(context.Background(), "mysql://localhost/db", logger.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestNewFromURL_BadURL(t *testing.T) {
	_, err := NewFromURL(context.Background(), "://", logger.NewNop())
	assert.Error(t, err)
}
