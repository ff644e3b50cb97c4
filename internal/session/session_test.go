package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "t1", 7))
	require.NoError(t, s.Put(ctx, "t2", 7))

	id, err := s.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	require.NoError(t, s.Delete(ctx, "t1"))
	require.NoError(t, s.Delete(ctx, "t1"))

	_, err = s.Get(ctx, "t1")
	assert.ErrorIs(t, err, ErrNotFound)

	id, err = s.Get(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(0))
}

func TestMemoryStore_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Put(ctx, "tok", 1))
	_, err := s.Get(ctx, "tok")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = s.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, s.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok := fmt.Sprintf("tok-%d", i)
			assert.NoError(t, s.Put(ctx, tok, int64(i)))
			id, err := s.Get(ctx, tok)
			assert.NoError(t, err)
			assert.Equal(t, int64(i), id)
			if i%2 == 0 {
				assert.NoError(t, s.Delete(ctx, tok))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 32, s.Len())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 0)
	defer s.Close()

	exerciseStore(t, s)
	assert.True(t, mr.Exists(keyPrefix+"t2"))
}

func TestRedisStore_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "tok", 3))
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"tok"))

	mr.FastForward(time.Hour)
	_, err := s.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_CorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 0)
	defer s.Close()

	require.NoError(t, mr.Set(keyPrefix+"bad", "not-a-number"))
	_, err := s.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewToken_Distinct(t *testing.T) {
	at := time.Now()
	a := NewToken("admin", "digest", at)
	b := NewToken("admin", "digest", at)

	assert.Len(t, a, 128)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, "^[0-9a-f]+$", a)
}

func TestNewFromURL(t *testing.T) {
	ctx := context.Background()

	s, err := NewFromURL(ctx, "memory://", 0)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	mr := miniredis.RunT(t)
	s, err = NewFromURL(ctx, "redis://"+mr.Addr()+"/0", time.Minute)
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)
	require.NoError(t, s.Close())

	_, err = NewFromURL(ctx, "etcd://localhost", 0)
	assert.Error(t, err)
}
