package modules

import (
	"leaguedash/api/handlers"
	matchservice "leaguedash/api/services/match"
	playerservice "leaguedash/api/services/player"
)

func initializePlayerHandler(deps *ModuleDependencies, matchService *matchservice.MatchService) *handlers.PlayerHandler {
	// Initialize the player service and handler.
	playerDeps := &playerservice.PlayerServiceDeps{
		Fetcher:    deps.Fetcher,
		Resolver:   deps.Resolver,
		DDragonURL: deps.Config.Assets.DDragonURL,
		CDragonURL: deps.Config.Assets.CommunityDragonURL,
		Logger:     deps.Logger,
	}

	playerService := playerservice.NewPlayerService(playerDeps)

	playerHandlerDeps := &handlers.PlayerHandlerDependencies{
		PlayerService: playerService,
		MatchService:  matchService,
		Sessions:      deps.Sessions,
	}

	return handlers.NewPlayerHandler(playerHandlerDeps)
}
