package playerservice

import (
	"context"
	"fmt"
	"leaguedash/api/converters"
	"leaguedash/api/dto"
	"leaguedash/api/filters"
	"leaguedash/fetcher/assets"
	"leaguedash/pkg/logger"
	"leaguedash/pkg/models/player"
)

// PlayerFetcher is the player surface of the data fetcher.
type PlayerFetcher interface {
	FetchPlayer(ctx context.Context, gameName, tagLine, region string) (*player.PlayerProfile, error)
	FetchRankings(ctx context.Context, puuid, region string) ([]player.RankedEntry, error)
}

// VersionResolver returns the asset version used for profile icons.
type VersionResolver interface {
	Latest() string
}

// PlayerService resolves player searches.
type PlayerService struct {
	fetcher    PlayerFetcher
	resolver   VersionResolver
	ddragonURL string
	cdragonURL string
	logger     *logger.Logger
}

// PlayerServiceDeps is the dependency list for the player service.
type PlayerServiceDeps struct {
	Fetcher    PlayerFetcher
	Resolver   VersionResolver
	DDragonURL string
	CDragonURL string
	Logger     *logger.Logger
}

// NewPlayerService creates a service for handling player searches.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		fetcher:    deps.Fetcher,
		resolver:   deps.Resolver,
		ddragonURL: deps.DDragonURL,
		cdragonURL: deps.CDragonURL,
		logger:     deps.Logger,
	}
}

// GetPlayer returns the profile of the searched Riot ID.
func (ps *PlayerService) GetPlayer(ctx context.Context, filter *filters.PlayerFilter) (*dto.PlayerView, error) {
	region := string(filter.Region)

	profile, err := ps.fetcher.FetchPlayer(ctx, filter.GameName, filter.TagLine, region)
	if err != nil {
		return nil, fmt.Errorf("player %s#%s: %w", filter.GameName, filter.TagLine, err)
	}

	view := converters.ConvertPlayer(profile, region)
	converters.AttachPlayerImages(view, assets.NewImages(ps.ddragonURL, ps.cdragonURL, ps.resolver.Latest(), ps.logger))

	return view, nil
}

// GetRankings returns the ranked entries of a puuid.
func (ps *PlayerService) GetRankings(ctx context.Context, filter *filters.RankingsFilter) (*dto.RankingsView, error) {
	region := string(filter.Region)

	entries, err := ps.fetcher.FetchRankings(ctx, filter.Puuid, region)
	if err != nil {
		return nil, fmt.Errorf("rankings of %s: %w", filter.Puuid, err)
	}

	view := &dto.RankingsView{
		Puuid:  filter.Puuid,
		Region: region,
		Rating: make([]dto.RatingInfo, 0, len(entries)),
	}
	for _, entry := range entries {
		view.Rating = append(view.Rating, converters.ConvertRankedEntry(entry))
	}
	view.Ranked = converters.SummarizeRankings(view.Rating)

	return view, nil
}
