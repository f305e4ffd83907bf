package redis

import (
	"context"
	"leaguedash/pkg/config"
	"time"

	"github.com/redis/go-redis/v9"
)

// Nil is returned by reads on missing keys.
const Nil = redis.Nil

// Type for the client.
type RedisClient struct {
	*redis.Client
}

// NewClient creates a pooled client for the configured server.
func NewClient(cfg *config.Config) *RedisClient {
	return NewClientWithOptions(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     100,
		MinIdleConns: 10,
		PoolTimeout:  30 * time.Second,
	})
}

// NewClientWithOptions wraps a client built with custom options.
func NewClientWithOptions(opts *redis.Options) *RedisClient {
	return &RedisClient{Client: redis.NewClient(opts)}
}

// Close the client connection.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Ping verifies the connection.
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// Wrapper to return the Result directly.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Wrapper to already return the .Err()
func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// First returns the first element of a list.
func (r *RedisClient) First(ctx context.Context, key string) (string, error) {
	return r.Client.LIndex(ctx, key, 0).Result()
}

// ReplaceList atomically replaces a list with the given values.
func (r *RedisClient) ReplaceList(ctx context.Context, key string, values []string) error {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}

	pipe := r.Client.TxPipeline()
	pipe.Del(ctx, key)
	if len(args) > 0 {
		pipe.RPush(ctx, key, args...)
	}
	_, err := pipe.Exec(ctx)
	return err
}
