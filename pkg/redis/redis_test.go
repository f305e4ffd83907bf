package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := NewClientWithOptions(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, srv
}

func TestGetSet(t *testing.T) {
	client, srv := setupClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "player:key", "value", time.Minute))

	value, err := client.Get(ctx, "player:key")
	assert.NoError(t, err)
	assert.Equal(t, "value", value)

	srv.FastForward(2 * time.Minute)
	_, err = client.Get(ctx, "player:key")
	assert.ErrorIs(t, err, Nil)
}

func TestReplaceList(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	require.NoError(t, client.ReplaceList(ctx, "versions", []string{"15.1.1", "14.24.1"}))
	require.NoError(t, client.ReplaceList(ctx, "versions", []string{"15.2.1", "15.1.1"}))

	first, err := client.First(ctx, "versions")
	assert.NoError(t, err)
	assert.Equal(t, "15.2.1", first)

	length, err := client.LLen(ctx, "versions").Result()
	assert.NoError(t, err)
	assert.EqualValues(t, 2, length)
}

func TestFirstOnMissingList(t *testing.T) {
	client, _ := setupClient(t)

	_, err := client.First(context.Background(), "missing")
	assert.ErrorIs(t, err, Nil)
}
