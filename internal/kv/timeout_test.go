package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/kv"
	"github.com/dmitrijs2005/gophgate/internal/kv/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowStore blocks until the context ends.
type slowStore struct{}

func (slowStore) Get(ctx context.Context, key string) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowStore) Set(ctx context.Context, key string, value []byte) error {
	<-ctx.Done()
	return ctx.Err()
}

func (slowStore) Delete(ctx context.Context, key string) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestWithTimeout_BoundsCalls(t *testing.T) {
	s := kv.WithTimeout(slowStore{}, 20*time.Millisecond)
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, s.Set(ctx, "k", nil), context.DeadlineExceeded)
	assert.ErrorIs(t, s.Delete(ctx, "k"), context.DeadlineExceeded)
}

func TestWithTimeout_PassesThrough(t *testing.T) {
	base := memory.New()
	s := kv.WithTimeout(base, time.Second)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	assert.Same(t, kv.Store(base), kv.WithTimeout(base, 0))
}
