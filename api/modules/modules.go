package modules

import (
	"leaguedash/api/handlers"
	"leaguedash/api/middleware"
	"leaguedash/fetcher/assets"
	"leaguedash/fetcher/data"
	"leaguedash/pkg/config"
	"leaguedash/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// ModuleDependencies is everything shared by the handlers.
type ModuleDependencies struct {
	Config   *config.Config
	Fetcher  *data.Fetcher
	Resolver *assets.VersionResolver
	Sessions *data.SessionRegistry
	Clock    clockwork.Clock
	Logger   *logger.Logger
}

// Module containing the necessary handlers.
type Module struct {
	Router        *gin.Engine
	PlayerHandler *handlers.PlayerHandler
	MatchHandler  *handlers.MatchHandler
	StaticHandler *handlers.StaticHandler
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(deps.Logger))

	if deps.Sessions == nil {
		deps.Sessions = data.NewSessionRegistry()
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	matchService := initializeMatchService(deps)

	return &Module{
		Router:        router,
		PlayerHandler: initializePlayerHandler(deps, matchService),
		MatchHandler:  initializeMatchHandler(matchService),
		StaticHandler: initializeStaticHandler(deps),
	}
}
