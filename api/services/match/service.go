package matchservice

import (
	"context"
	"errors"
	"fmt"
	"leaguedash/api/converters"
	"leaguedash/api/dto"
	"leaguedash/api/filters"
	"leaguedash/fetcher/assets"
	"leaguedash/fetcher/data"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/cache"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/models/match"
	"leaguedash/pkg/models/player"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const defaultPageSize = 20

// MatchFetcher is the match surface of the data fetcher.
type MatchFetcher interface {
	FetchAccount(ctx context.Context, gameName, tagLine, region string) (*player.Account, error)
	FetchMatchHistory(ctx context.Context, puuid, region string, offset, count int) ([]string, error)
	FetchMatchDetail(ctx context.Context, matchID, region string) (*match.MatchRecord, error)
	FetchMatchDetails(ctx context.Context, matchIDs []string, region string) []data.DetailResult
}

// VersionResolver picks the asset version of a match.
type VersionResolver interface {
	ResolveFromMatch(m *match.MatchRecord) string
}

// MatchService builds match histories and match details.
type MatchService struct {
	fetcher    MatchFetcher
	resolver   VersionResolver
	histories  cache.MemCache[*data.MatchHistory]
	historyTTL time.Duration
	pageSize   int
	ddragonURL string
	cdragonURL string
	clock      clockwork.Clock
	logger     *logger.Logger

	// Guards the creation of history pagers.
	mu sync.Mutex
}

// MatchServiceDeps is the dependency list for the match service.
type MatchServiceDeps struct {
	Fetcher    MatchFetcher
	Resolver   VersionResolver
	Histories  cache.MemCache[*data.MatchHistory]
	HistoryTTL time.Duration
	PageSize   int
	DDragonURL string
	CDragonURL string
	Clock      clockwork.Clock
	Logger     *logger.Logger
}

// NewMatchService creates a match service.
func NewMatchService(deps *MatchServiceDeps) *MatchService {
	ms := &MatchService{
		fetcher:    deps.Fetcher,
		resolver:   deps.Resolver,
		histories:  deps.Histories,
		historyTTL: deps.HistoryTTL,
		pageSize:   deps.PageSize,
		ddragonURL: deps.DDragonURL,
		cdragonURL: deps.CDragonURL,
		clock:      deps.Clock,
		logger:     deps.Logger,
	}

	if ms.histories == nil {
		ms.histories = cache.NewMemCache[*data.MatchHistory](time.Minute)
	}
	if ms.pageSize <= 0 {
		ms.pageSize = defaultPageSize
	}
	if ms.clock == nil {
		ms.clock = clockwork.NewRealClock()
	}

	return ms
}

// GetMatchHistory returns one window of the history of a player.
// Matches that fail to load are returned as failed entries, the page is still served.
func (ms *MatchService) GetMatchHistory(ctx context.Context, filter *filters.MatchHistoryFilter) (*dto.MatchHistoryPage, error) {
	region := string(filter.Player.Region)

	puuid := filter.Puuid
	if puuid == "" {
		account, err := ms.fetcher.FetchAccount(ctx, filter.Player.GameName, filter.Player.TagLine, region)
		if err != nil {
			return nil, fmt.Errorf("account %s#%s: %w", filter.Player.GameName, filter.Player.TagLine, err)
		}
		puuid = account.Puuid
	}

	ids, hasMore, err := ms.history(puuid, region).Window(ctx, filter.Offset, filter.Count)
	if err != nil {
		return nil, fmt.Errorf("match history of %s: %w", puuid, err)
	}

	page := &dto.MatchHistoryPage{
		Puuid:      puuid,
		Offset:     filter.Offset,
		Count:      filter.Count,
		Entries:    make([]*dto.HistoryEntry, 0, len(ids)),
		NextOffset: filter.Offset + len(ids),
		HasMore:    hasMore,
	}

	now := ms.clock.Now()
	for _, result := range ms.fetcher.FetchMatchDetails(ctx, ids, region) {
		page.Entries = append(page.Entries, ms.historyEntry(result, puuid, now))
	}

	if failed := page.Failed(); failed > 0 {
		ms.logger.Warnf("%d of %d matches of %s failed to load", failed, len(ids), puuid)
	}

	return page, nil
}

// GetMatch returns the full view of a match for the viewer.
func (ms *MatchService) GetMatch(ctx context.Context, filter *filters.MatchFilter) (*dto.MatchView, error) {
	m, err := ms.fetcher.FetchMatchDetail(ctx, filter.MatchID, string(filter.Region))
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", filter.MatchID, err)
	}

	view, err := converters.Aggregate(m, filter.Viewer)
	if err != nil {
		return nil, err
	}

	converters.AttachImages(view, ms.images(m))
	return view, nil
}

// history returns the pager of a player, created on first use.
func (ms *MatchService) history(puuid, region string) *data.MatchHistory {
	key := puuid + "@" + region

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if h, ok := ms.histories.Get(key); ok {
		return h
	}

	h := data.NewMatchHistory(ms.fetcher, puuid, region, ms.pageSize)
	ms.histories.Set(key, h, ms.historyTTL)
	return h
}

func (ms *MatchService) historyEntry(result data.DetailResult, puuid string, now time.Time) *dto.HistoryEntry {
	entry := &dto.HistoryEntry{MatchID: result.MatchID}
	if result.Err != nil {
		entry.Error = result.Err.Error()
		entry.Retryable = requests.IsTransient(result.Err) || errors.Is(result.Err, context.DeadlineExceeded)
		return entry
	}

	view, err := converters.Aggregate(result.Match, puuid)
	if err != nil {
		ms.logger.Errorf("Failed to aggregate match %s: %v", result.MatchID, err)
		entry.Error = err.Error()
		return entry
	}

	converters.AttachImages(view, ms.images(result.Match))
	entry.Summary = converters.Summarize(view, now)
	return entry
}

func (ms *MatchService) images(m *match.MatchRecord) *assets.Images {
	return assets.NewImages(ms.ddragonURL, ms.cdragonURL, ms.resolver.ResolveFromMatch(m), ms.logger)
}
