package routes

import (
	"testing"

	"leaguedash/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	router.SetupRoutes(&handlers.PlayerHandler{}, &handlers.MatchHandler{}, &handlers.StaticHandler{}, "ignored")

	registered := make(map[string]bool)
	for _, route := range router.Engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/v1/players/:region/:riotId",
		"GET /api/v1/players/:region/:riotId/matches",
		"GET /api/v1/rankings/:region/:puuid",
		"GET /api/v1/matches/:region/:matchId",
		"GET /api/v1/queues/:queueId",
		"GET /api/v1/assets/version",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, registered, len(expected))
}
