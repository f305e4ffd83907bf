package data

import (
	"context"
	"fmt"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/cache"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/models/match"
	"leaguedash/pkg/models/player"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	defaultFlightTimeout = 30 * time.Second
	defaultConcurrency   = 5
)

// Backend is the stats backend surface used by the fetcher.
type Backend interface {
	GetPlayer(ctx context.Context, gameName, tagLine, region string) (*player.PlayerProfile, error)
	GetAccount(ctx context.Context, gameName, tagLine, region string) (*player.Account, error)
	GetSummonerByPuuid(ctx context.Context, puuid, region string) (*player.Summoner, error)
	GetRankings(ctx context.Context, summonerID, region string) ([]player.RankedEntry, error)
	GetMatchIDs(ctx context.Context, puuid, region string, offset, count int) ([]string, error)
	GetMatch(ctx context.Context, matchID, region string) (*match.MatchRecord, error)
}

// Fetcher is the cached and deduplicated access to the backend.
type Fetcher struct {
	backend       Backend
	players       cache.MemCache[*player.PlayerProfile]
	accounts      cache.MemCache[*player.Account]
	rankings      cache.MemCache[[]player.RankedEntry]
	histories     cache.MemCache[[]string]
	matches       cache.MemCache[*match.MatchRecord]
	store         cache.MatchStore
	playerTTL     time.Duration
	historyTTL    time.Duration
	flightTimeout time.Duration
	concurrency   int
	logger        *logger.Logger
	group         singleflight.Group
}

// FetcherDeps is the dependency list of the fetcher.
// Store is optional, missing caches are created with the default cleanup.
type FetcherDeps struct {
	Backend       Backend
	PlayerCache   cache.MemCache[*player.PlayerProfile]
	AccountCache  cache.MemCache[*player.Account]
	RankingsCache cache.MemCache[[]player.RankedEntry]
	HistoryCache  cache.MemCache[[]string]
	MatchCache    cache.MemCache[*match.MatchRecord]
	Store         cache.MatchStore
	PlayerTTL     time.Duration
	HistoryTTL    time.Duration
	FlightTimeout time.Duration
	Concurrency   int
	Logger        *logger.Logger
}

// NewFetcher creates the fetcher.
func NewFetcher(deps *FetcherDeps) *Fetcher {
	f := &Fetcher{
		backend:       deps.Backend,
		players:       deps.PlayerCache,
		accounts:      deps.AccountCache,
		rankings:      deps.RankingsCache,
		histories:     deps.HistoryCache,
		matches:       deps.MatchCache,
		store:         deps.Store,
		playerTTL:     deps.PlayerTTL,
		historyTTL:    deps.HistoryTTL,
		flightTimeout: deps.FlightTimeout,
		concurrency:   deps.Concurrency,
		logger:        deps.Logger,
	}

	if f.players == nil {
		f.players = cache.NewMemCache[*player.PlayerProfile](time.Minute)
	}
	if f.accounts == nil {
		f.accounts = cache.NewMemCache[*player.Account](time.Minute)
	}
	if f.rankings == nil {
		f.rankings = cache.NewMemCache[[]player.RankedEntry](time.Minute)
	}
	if f.histories == nil {
		f.histories = cache.NewMemCache[[]string](time.Minute)
	}
	if f.matches == nil {
		f.matches = cache.NewMemCache[*match.MatchRecord](0)
	}
	if f.flightTimeout <= 0 {
		f.flightTimeout = defaultFlightTimeout
	}
	if f.concurrency <= 0 {
		f.concurrency = defaultConcurrency
	}

	return f
}

// Close stops the cache workers.
func (f *Fetcher) Close() {
	f.players.Close()
	f.accounts.Close()
	f.rankings.Close()
	f.histories.Close()
	f.matches.Close()
}

// FetchPlayer returns the profile of a Riot ID on a region.
func (f *Fetcher) FetchPlayer(ctx context.Context, gameName, tagLine, region string) (*player.PlayerProfile, error) {
	key := player.CacheKey(gameName, tagLine, region)
	if profile, ok := f.players.Get(key); ok {
		return profile, nil
	}

	return shared(ctx, f, "player:"+key, func(ctx context.Context) (*player.PlayerProfile, error) {
		profile, err := f.backend.GetPlayer(ctx, gameName, tagLine, region)
		if err == nil && profile == nil {
			err = emptyPayload(requests.OpFetchPlayer, key)
		}
		if err != nil {
			f.logger.Errorf("Failed to fetch player %s: %v", key, err)
			return nil, err
		}

		f.players.Set(key, profile, f.playerTTL)
		return profile, nil
	})
}

// FetchAccount returns only the account of a Riot ID, cheaper than the full profile.
// A cached profile is used when present.
func (f *Fetcher) FetchAccount(ctx context.Context, gameName, tagLine, region string) (*player.Account, error) {
	key := player.CacheKey(gameName, tagLine, region)
	if profile, ok := f.players.Get(key); ok {
		return &profile.Account, nil
	}
	if account, ok := f.accounts.Get(key); ok {
		return account, nil
	}

	return shared(ctx, f, "account:"+key, func(ctx context.Context) (*player.Account, error) {
		account, err := f.backend.GetAccount(ctx, gameName, tagLine, region)
		if err == nil && account == nil {
			err = emptyPayload(requests.OpFetchAccount, key)
		}
		if err != nil {
			f.logger.Errorf("Failed to fetch account %s: %v", key, err)
			return nil, err
		}

		f.accounts.Set(key, account, f.playerTTL)
		return account, nil
	})
}

// FetchRankings returns the ranked entries of a player, resolving the summoner first.
func (f *Fetcher) FetchRankings(ctx context.Context, puuid, region string) ([]player.RankedEntry, error) {
	key := puuid + "@" + region
	if entries, ok := f.rankings.Get(key); ok {
		return entries, nil
	}

	return shared(ctx, f, "rankings:"+key, func(ctx context.Context) ([]player.RankedEntry, error) {
		summoner, err := f.backend.GetSummonerByPuuid(ctx, puuid, region)
		if err == nil && summoner == nil {
			err = emptyPayload(requests.OpFetchSummoner, key)
		}
		if err != nil {
			f.logger.Errorf("Failed to fetch summoner %s: %v", key, err)
			return nil, err
		}

		entries, err := f.backend.GetRankings(ctx, summoner.ID, region)
		if err != nil {
			f.logger.Errorf("Failed to fetch rankings %s: %v", key, err)
			return nil, err
		}

		f.rankings.Set(key, entries, f.playerTTL)
		return entries, nil
	})
}

// FetchMatchHistory returns count match ids from offset, newest first.
func (f *Fetcher) FetchMatchHistory(ctx context.Context, puuid, region string, offset, count int) ([]string, error) {
	key := fmt.Sprintf("%s@%s[%d:%d]", puuid, region, offset, offset+count)
	if ids, ok := f.histories.Get(key); ok {
		return ids, nil
	}

	return shared(ctx, f, "history:"+key, func(ctx context.Context) ([]string, error) {
		ids, err := f.backend.GetMatchIDs(ctx, puuid, region, offset, count)
		if err != nil {
			f.logger.Errorf("Failed to fetch match history %s: %v", key, err)
			return nil, err
		}

		f.histories.Set(key, ids, f.historyTTL)
		return ids, nil
	})
}

// FetchMatchDetail returns a match. Once a match is retrieved it is served
// from memory or the store and never requested again.
func (f *Fetcher) FetchMatchDetail(ctx context.Context, matchID, region string) (*match.MatchRecord, error) {
	if m, ok := f.matches.Get(matchID); ok {
		return m, nil
	}

	return shared(ctx, f, "match:"+matchID, func(ctx context.Context) (*match.MatchRecord, error) {
		if m, ok := f.matches.Get(matchID); ok {
			return m, nil
		}

		if m := f.storedMatch(ctx, matchID); m != nil {
			f.matches.Set(matchID, m, cache.NoExpiration)
			return m, nil
		}

		m, err := f.backend.GetMatch(ctx, matchID, region)
		if err == nil && m == nil {
			err = emptyPayload(requests.OpFetchMatchDetail, matchID)
		}
		if err != nil {
			f.logger.Errorf("Failed to fetch match %s: %v", matchID, err)
			return nil, err
		}

		if err := m.Validate(); err != nil {
			f.logger.Warnf("Match %s is inconsistent: %v", matchID, err)
		}

		f.matches.Set(matchID, m, cache.NoExpiration)
		if f.store != nil {
			if err := f.store.SaveMatch(ctx, m); err != nil {
				f.logger.Errorf("Failed to store match %s: %v", matchID, err)
			}
		}
		return m, nil
	})
}

// storedMatch reads the persistent copy of a match, nil on a miss or a store failure.
func (f *Fetcher) storedMatch(ctx context.Context, matchID string) *match.MatchRecord {
	if f.store == nil {
		return nil
	}

	m, err := f.store.GetMatch(ctx, matchID)
	if err != nil {
		// A bare ErrMatchNotStored is a plain miss, anything else had a failing tier.
		if err != cache.ErrMatchNotStored {
			f.logger.Warnf("Failed to read stored match %s: %v", matchID, err)
		}
		return nil
	}
	return m
}

// emptyPayload is the error of a backend answer without data. Nothing is cached for it.
func emptyPayload(op, key string) error {
	return &requests.APIError{Op: op, Key: key, Kind: requests.KindNotFound, Message: "empty payload"}
}

// shared runs fetch once per key for every concurrent caller. The flight is
// detached from the caller, a caller leaving early doesn't cancel it for the others.
func shared[T any](ctx context.Context, f *Fetcher, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	ch := f.group.DoChan(key, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.flightTimeout)
		defer cancel()
		return fetch(flightCtx)
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
