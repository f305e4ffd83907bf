package modules

import (
	"leaguedash/api/handlers"
	staticservice "leaguedash/api/services/static"
)

func initializeStaticHandler(deps *ModuleDependencies) *handlers.StaticHandler {
	staticService := staticservice.NewStaticService(&staticservice.StaticServiceDeps{
		Resolver: deps.Resolver,
	})

	return handlers.NewStaticHandler(&handlers.StaticHandlerDependencies{
		StaticService: staticService,
	})
}
