package assets

import "context"

// VersionListClient is the part of the redis wrapper used for the version list.
type VersionListClient interface {
	First(ctx context.Context, key string) (string, error)
	ReplaceList(ctx context.Context, key string, values []string) error
}

// RedisVersionStore keeps the latest versions on a redis list.
type RedisVersionStore struct {
	client VersionListClient
}

// NewRedisVersionStore creates the store.
func NewRedisVersionStore(client VersionListClient) *RedisVersionStore {
	return &RedisVersionStore{client: client}
}

// LatestVersion returns the newest saved version.
func (s *RedisVersionStore) LatestVersion(ctx context.Context) (string, error) {
	return s.client.First(ctx, versionKey)
}

// SaveVersions replaces the saved list.
func (s *RedisVersionStore) SaveVersions(ctx context.Context, versions []string) error {
	return s.client.ReplaceList(ctx, versionKey, versions)
}
