package data

import (
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/cache"
	"leaguedash/pkg/config"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/models/match"
	"leaguedash/pkg/models/player"

	"github.com/jonboulle/clockwork"
)

// NewConfiguredFetcher creates the fetcher of the backend at cfg.Backend.BaseURL,
// rate limited on the client side. store may be nil.
func NewConfiguredFetcher(cfg *config.Config, store cache.MatchStore, log *logger.Logger) *Fetcher {
	clock := clockwork.NewRealClock()
	limiter := requests.NewRateLimiter(clock, requests.Window{Count: cfg.Backend.LimitCount, Interval: cfg.Backend.LimitWindow})
	backend := requests.NewBackendClient(cfg.Backend.BaseURL, requests.NewHTTPClient(cfg.Backend.Timeout, limiter))

	interval := cfg.Cache.CleanupInterval
	return NewFetcher(&FetcherDeps{
		Backend:       backend,
		PlayerCache:   cache.NewMemCacheWithClock[*player.PlayerProfile](clock, interval),
		AccountCache:  cache.NewMemCacheWithClock[*player.Account](clock, interval),
		RankingsCache: cache.NewMemCacheWithClock[[]player.RankedEntry](clock, interval),
		HistoryCache:  cache.NewMemCacheWithClock[[]string](clock, interval),
		MatchCache:    cache.NewMemCacheWithClock[*match.MatchRecord](clock, 0),
		Store:         store,
		PlayerTTL:     cfg.Cache.PlayerTTL,
		HistoryTTL:    cfg.Cache.HistoryTTL,
		FlightTimeout: cfg.Backend.Timeout * 3,
		Concurrency:   cfg.Backend.Concurrency,
		Logger:        log,
	})
}
