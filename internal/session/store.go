// Package session keeps the token → user id mapping of logged-in clients.
package session

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session not found")

// Store is safe for concurrent use.
type Store interface {
	Put(ctx context.Context, token string, userID int64) error
	// Get returns ErrNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (int64, error)
	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error
	Close() error
}
