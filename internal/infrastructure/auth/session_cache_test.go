package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/finstatements/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySessionCache_PutGet(t *testing.T) {
	cache := auth.NewInMemorySessionCache()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, cache.Put(ctx, "token-1", userID, time.Hour))

	got, ok, err := cache.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	_, ok, err = cache.Get(ctx, "token-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemorySessionCache_Expiration(t *testing.T) {
	cache := auth.NewInMemorySessionCache()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "short", uuid.New(), time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	_, ok, err := cache.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemorySessionCache_NonPositiveTTLIsIgnored(t *testing.T) {
	cache := auth.NewInMemorySessionCache()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "expired", uuid.New(), 0))

	_, ok, err := cache.Get(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemorySessionCache_Evict(t *testing.T) {
	cache := auth.NewInMemorySessionCache()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "token", uuid.New(), time.Hour))
	require.NoError(t, cache.Evict(ctx, "token"))
	require.NoError(t, cache.Evict(ctx, "never-cached"))

	_, ok, err := cache.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)
}
