package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-keeper/internal/config"
)

type testStruct struct {
	Name  string
	Value float64
}

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	expected := testStruct{Name: "inventory-value", Value: 1920.50}
	err := cache.Set(ctx, "reports:u1:inventory-value", expected, time.Minute)
	require.NoError(t, err)

	var actual testStruct
	found, err := cache.Get(ctx, "reports:u1:inventory-value", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out testStruct
	found, err := cache.Get(context.Background(), "no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidateByPrefix(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "reports:u1:inventory-value", testStruct{Value: 1}, time.Minute))
	require.NoError(t, cache.Set(ctx, "reports:u1:trends:2024-01-01", testStruct{Value: 2}, time.Minute))
	require.NoError(t, cache.Set(ctx, "reports:u2:inventory-value", testStruct{Value: 3}, time.Minute))

	require.NoError(t, cache.InvalidateByPrefix(ctx, "reports:u1:"))

	var out testStruct
	found, err := cache.Get(ctx, "reports:u1:inventory-value", &out)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = cache.Get(ctx, "reports:u1:trends:2024-01-01", &out)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = cache.Get(ctx, "reports:u2:inventory-value", &out)
	require.NoError(t, err)
	assert.True(t, found, "other user's reports should survive invalidation")
}
