package session

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewFromURL returns a memory store for memory:// and a Redis store for redis:// or rediss://.
func NewFromURL(ctx context.Context, storeURL string, ttl time.Duration) (Store, error) {
	u, err := url.Parse(storeURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing session URL: %s", err.Error())
	}

	switch u.Scheme {
	case "memory", "":
		return NewMemoryStore(ttl), nil
	case "redis", "rediss":
		opts, err := redis.ParseURL(storeURL)
		if err != nil {
			return nil, fmt.Errorf("error parsing redis URL: %w", err)
		}
		c := redis.NewClient(opts)
		if err = c.Ping(ctx).Err(); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return NewRedisStore(c, ttl), nil
	default:
		return nil, fmt.Errorf("no session store found for %s:// URL", u.Scheme)
	}
}
