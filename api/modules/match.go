package modules

import (
	"leaguedash/api/handlers"
	matchservice "leaguedash/api/services/match"
	"leaguedash/fetcher/data"
	"leaguedash/pkg/cache"
)

// The match service is shared by the player handler for the histories.
func initializeMatchService(deps *ModuleDependencies) *matchservice.MatchService {
	matchDeps := &matchservice.MatchServiceDeps{
		Fetcher:    deps.Fetcher,
		Resolver:   deps.Resolver,
		Histories:  cache.NewMemCacheWithClock[*data.MatchHistory](deps.Clock, deps.Config.Cache.CleanupInterval),
		HistoryTTL: deps.Config.Cache.HistoryTTL,
		DDragonURL: deps.Config.Assets.DDragonURL,
		CDragonURL: deps.Config.Assets.CommunityDragonURL,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}

	return matchservice.NewMatchService(matchDeps)
}

func initializeMatchHandler(matchService *matchservice.MatchService) *handlers.MatchHandler {
	matchHandlerDeps := &handlers.MatchHandlerDependencies{
		MatchService: matchService,
	}

	return handlers.NewMatchHandler(matchHandlerDeps)
}
