package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	matchservice "leaguedash/api/services/match"
	playerservice "leaguedash/api/services/player"
	staticservice "leaguedash/api/services/static"
	mocks "leaguedash/api/services/testutil"
	"leaguedash/fetcher/data"
	"leaguedash/fetcher/requests"
	"leaguedash/internal/testutil"
	"leaguedash/pkg/models/player"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	engine   *gin.Engine
	fetcher  *mocks.MockFetcher
	resolver *mocks.MockVersionResolver
}

func setupTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	fetcher := new(mocks.MockFetcher)
	resolver := new(mocks.MockVersionResolver)

	matchService := matchservice.NewMatchService(&matchservice.MatchServiceDeps{
		Fetcher:    fetcher,
		Resolver:   resolver,
		HistoryTTL: time.Minute,
		PageSize:   10,
	})
	playerHandler := NewPlayerHandler(&PlayerHandlerDependencies{
		PlayerService: playerservice.NewPlayerService(&playerservice.PlayerServiceDeps{Fetcher: fetcher, Resolver: resolver}),
		MatchService:  matchService,
		Sessions:      data.NewSessionRegistry(),
	})
	matchHandler := NewMatchHandler(&MatchHandlerDependencies{MatchService: matchService})
	staticHandler := NewStaticHandler(&StaticHandlerDependencies{
		StaticService: staticservice.NewStaticService(&staticservice.StaticServiceDeps{Resolver: resolver}),
	})

	engine := gin.New()
	engine.GET("/players/:region/:riotId", playerHandler.GetPlayer)
	engine.GET("/players/:region/:riotId/matches", playerHandler.GetPlayerMatchHistory)
	engine.GET("/rankings/:region/:puuid", playerHandler.GetPlayerRankings)
	engine.GET("/matches/:region/:matchId", matchHandler.GetMatch)
	engine.GET("/queues/:queueId", staticHandler.GetQueue)
	engine.GET("/assets/version", staticHandler.GetAssetVersion)

	return &testServer{engine: engine, fetcher: fetcher, resolver: resolver}
}

func (s *testServer) get(path string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestGetPlayer(t *testing.T) {
	notFound := &requests.APIError{Op: "player", Key: "Nobody#EUW", Status: 404, Kind: requests.KindNotFound}
	transient := &requests.APIError{Op: "player", Key: "Caps#G2", Status: 503, Kind: requests.KindTransient}

	tests := []struct {
		name    string
		path    string
		setup   func(s *testServer)
		status  int
		checkFn func(t *testing.T, body map[string]any)
	}{
		{
			name: "found",
			path: "/players/euw/Caps-G2",
			setup: func(s *testServer) {
				s.fetcher.On("FetchPlayer", mock.Anything, "Caps", "G2", "EUW").Return(testutil.NewPlayerProfile("Caps", "G2"), nil)
				s.resolver.On("Latest").Return("15.13.1")
			},
			status: http.StatusOK,
			checkFn: func(t *testing.T, body map[string]any) {
				result := body["result"].(map[string]any)
				assert.Equal(t, "Caps#G2", result["riotId"])
			},
		},
		{
			name:   "invalid riot id",
			path:   "/players/euw/Caps",
			setup:  func(s *testServer) {},
			status: http.StatusBadRequest,
			checkFn: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "riotId", body["field"])
			},
		},
		{
			name:   "invalid region",
			path:   "/players/moon/Caps-G2",
			setup:  func(s *testServer) {},
			status: http.StatusBadRequest,
		},
		{
			name: "not found",
			path: "/players/euw/Nobody-EUW",
			setup: func(s *testServer) {
				s.fetcher.On("FetchPlayer", mock.Anything, "Nobody", "EUW", "EUW").Return(nil, notFound)
			},
			status: http.StatusNotFound,
			checkFn: func(t *testing.T, body map[string]any) {
				assert.NotEmpty(t, body["hint"])
			},
		},
		{
			name: "transient",
			path: "/players/euw/Caps-G2",
			setup: func(s *testServer) {
				s.fetcher.On("FetchPlayer", mock.Anything, "Caps", "G2", "EUW").Return(nil, transient)
			},
			status: http.StatusBadGateway,
			checkFn: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["retryable"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer(t)
			tt.setup(s)

			w, body := s.get(tt.path, nil)
			assert.Equal(t, tt.status, w.Code)
			if tt.checkFn != nil {
				tt.checkFn(t, body)
			}
			testutil.VerifyAllMocks(t, s.fetcher, s.resolver)
		})
	}
}

func TestGetPlayerSuperseded(t *testing.T) {
	s := setupTestServer(t)

	started := make(chan struct{})
	s.fetcher.On("FetchPlayer", mock.Anything, "Caps", "G2", "EUW").
		Run(func(args mock.Arguments) {
			close(started)
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, context.Canceled).Once()
	s.fetcher.On("FetchPlayer", mock.Anything, "Faker", "T1", "KR").Return(testutil.NewPlayerProfile("Faker", "T1"), nil).Once()
	s.resolver.On("Latest").Return("15.13.1")

	headers := map[string]string{ClientIDHeader: "tab-1"}

	var first *httptest.ResponseRecorder
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, _ = s.get("/players/euw/Caps-G2", headers)
	}()

	<-started
	second, _ := s.get("/players/kr/Faker-T1", headers)
	wg.Wait()

	assert.Equal(t, http.StatusConflict, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestGetPlayerMatchHistory(t *testing.T) {
	s := setupTestServer(t)

	ids := testutil.MatchIDs(0, 2)
	s.fetcher.On("FetchAccount", mock.Anything, "Caps", "G2", "EUW").Return(&player.Account{Puuid: testutil.ViewerPuuid}, nil)
	s.fetcher.On("FetchMatchHistory", mock.Anything, testutil.ViewerPuuid, "EUW", 0, 10).Return(ids, nil)
	s.fetcher.On("FetchMatchDetails", mock.Anything, ids, "EUW").Return([]data.DetailResult{
		{MatchID: ids[0], Match: testutil.NewStandardMatch(ids[0])},
		{MatchID: ids[1], Err: errors.New("boom")},
	})
	s.resolver.On("ResolveFromMatch", mock.Anything).Return("14.23.1")

	w, body := s.get("/players/euw/Caps-G2/matches?count=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	result := body["result"].(map[string]any)
	entries := result["entries"].([]any)
	require.Len(t, entries, 2)
	assert.NotNil(t, entries[0].(map[string]any)["summary"])
	assert.Equal(t, "boom", entries[1].(map[string]any)["error"])
	assert.Equal(t, false, result["hasMore"])

	w, _ = s.get("/players/euw/Caps-G2/matches?count=500", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = s.get("/players/euw/Caps-G2/matches?count=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "count", body["field"])
}

func TestGetMatch(t *testing.T) {
	s := setupTestServer(t)

	s.fetcher.On("FetchMatchDetail", mock.Anything, "EUW1_1", "EUW").Return(testutil.NewStandardMatch("EUW1_1"), nil)
	s.resolver.On("ResolveFromMatch", mock.Anything).Return("14.23.1")

	w, body := s.get("/matches/euw/EUW1_1?viewer=puuid-3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "EUW1_1", body["result"].(map[string]any)["matchId"])

	w, _ = s.get("/matches/euw/EUW1_1?viewer=puuid-99", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = s.get("/matches/euw/EUW1_1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaticEndpoints(t *testing.T) {
	s := setupTestServer(t)

	w, body := s.get("/queues/450", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(450), body["result"].(map[string]any)["queueId"])

	w, _ = s.get("/queues/aram", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.resolver.On("Latest").Return("15.13.1")
	s.resolver.On("Resolve", "14.23.590.9183").Return("14.23.1")

	w, body = s.get("/assets/version?gameVersion=14.23.590.9183", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "14.23.1", body["result"].(map[string]any)["version"])
}
