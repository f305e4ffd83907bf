package modules

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"leaguedash/api/routes"
	"leaguedash/fetcher/assets"
	"leaguedash/fetcher/data"
	"leaguedash/internal/testutil"
	"leaguedash/pkg/config"
	"leaguedash/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// newBackend serves one player with a two match history.
func newBackend(t *testing.T, playerCalls *atomic.Int32) *httptest.Server {
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, status int, body envelope) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}

	mux.HandleFunc("/player/{name}/{tag}", func(w http.ResponseWriter, r *http.Request) {
		playerCalls.Add(1)
		if r.PathValue("name") != "Caps" {
			write(w, http.StatusNotFound, envelope{Error: "player not found"})
			return
		}
		write(w, http.StatusOK, envelope{Success: true, Data: testutil.NewPlayerProfile("Caps", "G2")})
	})
	mux.HandleFunc("/account/{name}/{tag}", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, envelope{Success: true, Data: testutil.NewPlayerProfile("Caps", "G2").Account})
	})
	mux.HandleFunc("/matches/by-puuid/{puuid}/ids", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, envelope{Success: true, Data: []string{"EUW1_1", "EUW1_2"}})
	})
	mux.HandleFunc("/matches/{matchId}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("matchId")
		if id == "EUW1_2" {
			write(w, http.StatusServiceUnavailable, envelope{Error: "try later"})
			return
		}
		write(w, http.StatusOK, envelope{Success: true, Data: testutil.NewStandardMatch(id)})
	})
	mux.HandleFunc("/api/versions.json", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]string{"15.20.1", "15.19.1"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setupModule(t *testing.T, backendURL string) *routes.Router {
	gin.SetMode(gin.TestMode)

	t.Setenv("BACKEND_URL", backendURL)
	t.Setenv("DDRAGON_URL", backendURL)
	cfg, err := config.Load()
	require.NoError(t, err)

	log := logger.Discard()
	fetcher := data.NewConfiguredFetcher(cfg, nil, log)
	t.Cleanup(fetcher.Close)

	module := NewModule(&ModuleDependencies{
		Config:   cfg,
		Fetcher:  fetcher,
		Resolver: assets.NewConfiguredResolver(cfg, nil, log),
		Logger:   log,
	})

	router := routes.NewRouter(module.Router)
	router.SetupRoutes(module.PlayerHandler, module.MatchHandler, module.StaticHandler)
	return router
}

func get(router *routes.Router, path string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	router.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestPlayerSearchFlow(t *testing.T) {
	var playerCalls atomic.Int32
	router := setupModule(t, newBackend(t, &playerCalls).URL)

	w, body := get(router, "/api/v1/players/euw/Caps-G2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	result := body["result"].(map[string]any)
	assert.Equal(t, "Caps#G2", result["riotId"])

	// Served from the player cache.
	w, _ = get(router, "/api/v1/players/EUW/caps-g2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(1), playerCalls.Load())

	w, body = get(router, "/api/v1/players/euw/Nobody-EUW")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, body["hint"])
}

func TestMatchHistoryFlow(t *testing.T) {
	var playerCalls atomic.Int32
	router := setupModule(t, newBackend(t, &playerCalls).URL)

	w, body := get(router, "/api/v1/players/euw/Caps-G2/matches?count=2")
	require.Equal(t, http.StatusOK, w.Code)

	result := body["result"].(map[string]any)
	entries := result["entries"].([]any)
	require.Len(t, entries, 2)

	first := entries[0].(map[string]any)
	assert.Equal(t, "EUW1_1", first["matchId"])
	summary := first["summary"].(map[string]any)
	viewer := summary["viewer"].(map[string]any)
	image := viewer["championImage"].(map[string]any)
	assert.True(t, strings.HasSuffix(image["url"].(string), "/cdn/14.23.1/img/champion/Ahri.png"))

	failed := entries[1].(map[string]any)
	assert.Nil(t, failed["summary"])
	assert.Equal(t, true, failed["retryable"])

	w, body = get(router, "/api/v1/matches/euw/EUW1_1?viewer=puuid-7")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "standard", body["result"].(map[string]any)["mode"])
}

func TestAssetVersionFlow(t *testing.T) {
	var playerCalls atomic.Int32
	router := setupModule(t, newBackend(t, &playerCalls).URL)

	w, body := get(router, "/api/v1/assets/version?gameVersion=14.23.590.9183")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "14.23.1", body["result"].(map[string]any)["version"])

	// The first call starts the background refresh of the latest version.
	assert.Eventually(t, func() bool {
		_, body := get(router, "/api/v1/assets/version")
		return body["result"].(map[string]any)["latest"] == "15.20.1"
	}, 2*time.Second, 20*time.Millisecond)
}
