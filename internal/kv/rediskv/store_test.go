package rediskv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps values in a map and answers with pre-built command results.
type fakeRedis struct {
	data map[string]string
	err  error

	lastExpiration time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.lastExpiration = expiration
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestStore_SetGetDelete(t *testing.T) {
	f := newFakeRedis()
	s := newWithClient(f)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "currentUser", []byte("Ana")))
	assert.Equal(t, time.Duration(0), f.lastExpiration)

	v, err := s.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.Equal(t, []byte("Ana"), v)

	require.NoError(t, s.Delete(ctx, "currentUser"))
	require.NoError(t, s.Delete(ctx, "currentUser"))

	v, err = s.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStore_ErrorsWrapped(t *testing.T) {
	f := newFakeRedis()
	f.err = errors.New("connection refused")
	s := newWithClient(f)
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	assert.ErrorContains(t, err, "failed to get kv[k]")

	err = s.Set(ctx, "k", []byte("v"))
	assert.ErrorContains(t, err, "failed to set kv[k]")

	err = s.Delete(ctx, "k")
	assert.ErrorContains(t, err, "failed to delete kv[k]")
}

func TestNew_UnreachableServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, _, err := New(ctx, Config{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping 127.0.0.1:1")
}
