package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/models/match"
	"time"
)

const matchKeyPrefix = "match:detail:"

// RedisClient is the subset of the redis wrapper used by the shared caches.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// MatchStore persists match details that never change once the game ended.
type MatchStore interface {
	GetMatch(ctx context.Context, matchID string) (*match.MatchRecord, error)
	SaveMatch(ctx context.Context, m *match.MatchRecord) error
}

// ErrMatchNotStored is returned when a store has no copy of the match.
var ErrMatchNotStored = errors.New("match not stored")

// RedisMatchCache shares match details between API instances.
type RedisMatchCache struct {
	redis   RedisClient
	ttl     time.Duration
	isEmpty func(error) bool
}

// NewRedisMatchCache creates the cache. isMissing reports redis "key not found" errors.
func NewRedisMatchCache(client RedisClient, ttl time.Duration, isMissing func(error) bool) *RedisMatchCache {
	return &RedisMatchCache{
		redis:   client,
		ttl:     ttl,
		isEmpty: isMissing,
	}
}

func matchKey(matchID string) string {
	return matchKeyPrefix + matchID
}

// GetMatch reads a match, returning ErrMatchNotStored on a miss.
func (c *RedisMatchCache) GetMatch(ctx context.Context, matchID string) (*match.MatchRecord, error) {
	raw, err := c.redis.Get(ctx, matchKey(matchID))
	if err != nil {
		if c.isEmpty != nil && c.isEmpty(err) {
			return nil, ErrMatchNotStored
		}
		return nil, fmt.Errorf("couldn't read match %s from redis: %w", matchID, err)
	}

	if raw == "" {
		return nil, ErrMatchNotStored
	}

	var m match.MatchRecord
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("couldn't decode cached match %s: %w", matchID, err)
	}

	return &m, nil
}

// SaveMatch stores a match.
func (c *RedisMatchCache) SaveMatch(ctx context.Context, m *match.MatchRecord) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	return c.redis.Set(ctx, matchKey(m.MatchID()), string(data), c.ttl)
}

// TieredMatchStore reads through several stores in order and backfills the faster ones.
type TieredMatchStore struct {
	tiers  []MatchStore
	logger *logger.Logger
}

// NewTieredMatchStore orders the stores from fastest to most durable. Nil stores are skipped.
// Failures of a tier that don't stop the read are logged.
func NewTieredMatchStore(log *logger.Logger, stores ...MatchStore) *TieredMatchStore {
	tiers := make([]MatchStore, 0, len(stores))
	for _, s := range stores {
		if s != nil {
			tiers = append(tiers, s)
		}
	}
	return &TieredMatchStore{tiers: tiers, logger: log}
}

// GetMatch returns the first copy found. Read errors on a tier are skipped,
// logged when a later tier has the match and returned when none has it.
func (t *TieredMatchStore) GetMatch(ctx context.Context, matchID string) (*match.MatchRecord, error) {
	var errs []error
	for i, store := range t.tiers {
		m, err := store.GetMatch(ctx, matchID)
		if err != nil {
			if !errors.Is(err, ErrMatchNotStored) {
				errs = append(errs, err)
			}
			continue
		}

		for _, err := range errs {
			t.logger.Warnf("Match %s read failed on a faster tier: %v", matchID, err)
		}
		for _, faster := range t.tiers[:i] {
			if err := faster.SaveMatch(ctx, m); err != nil {
				t.logger.Warnf("Couldn't backfill match %s: %v", matchID, err)
			}
		}
		return m, nil
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrMatchNotStored, errors.Join(errs...))
	}
	return nil, ErrMatchNotStored
}

// SaveMatch writes to every tier.
func (t *TieredMatchStore) SaveMatch(ctx context.Context, m *match.MatchRecord) error {
	var errs []error
	for _, store := range t.tiers {
		if err := store.SaveMatch(ctx, m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
