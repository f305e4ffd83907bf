package routes

import (
	"leaguedash/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.MatchHandler:
			r.registerMatchHandler(handler)
		case *handlers.StaticHandler:
			r.registerStaticHandler(handler)
		}
	}
}

// Register the player handler. The riot id is "Name-Tag".
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	players := r.api.Group("/players/:region")
	{
		players.GET("/:riotId", handler.GetPlayer)
		players.GET("/:riotId/matches", handler.GetPlayerMatchHistory)
	}

	r.api.GET("/rankings/:region/:puuid", handler.GetPlayerRankings)
}

// Register the match handler.
func (r *Router) registerMatchHandler(handler *handlers.MatchHandler) {
	matches := r.api.Group("/matches")
	{
		matches.GET("/:region/:matchId", handler.GetMatch)
	}
}

// Register the queue and asset handler.
func (r *Router) registerStaticHandler(handler *handlers.StaticHandler) {
	r.api.GET("/queues/:queueId", handler.GetQueue)
	r.api.GET("/assets/version", handler.GetAssetVersion)
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
