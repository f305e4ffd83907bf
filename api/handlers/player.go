package handlers

import (
	"leaguedash/api/filters"
	matchservice "leaguedash/api/services/match"
	playerservice "leaguedash/api/services/player"
	"leaguedash/fetcher/data"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlayerHandler is the handler for the player endpoints.
type PlayerHandler struct {
	PlayerService *playerservice.PlayerService
	MatchService  *matchservice.MatchService
	Sessions      *data.SessionRegistry
}

type PlayerHandlerDependencies struct {
	PlayerService *playerservice.PlayerService
	MatchService  *matchservice.MatchService
	Sessions      *data.SessionRegistry
}

// NewPlayerHandler creates a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		PlayerService: deps.PlayerService,
		MatchService:  deps.MatchService,
		Sessions:      deps.Sessions,
	}
}

// Helper to bind the default URI params for players.
func (h *PlayerHandler) bindURIParams(c *gin.Context) (*filters.PlayerURIParams, error) {
	var pp filters.PlayerURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		return nil, err
	}
	return &pp, nil
}

// GetPlayer handles a player search.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	pp, err := h.bindURIParams(c)
	if err != nil {
		bindError(c, err)
		return
	}

	filter, err := filters.NewPlayerFilter(pp)
	if err != nil {
		respondError(c, err)
		return
	}

	search := beginSearch(c, h.Sessions, "player")
	defer search.End()

	result, err := h.PlayerService.GetPlayer(search.Context(), filter)
	if result, err = data.Apply(search, result, err); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetPlayerMatchHistory handles a "load more" window of a player history.
func (h *PlayerHandler) GetPlayerMatchHistory(c *gin.Context) {
	pp, err := h.bindURIParams(c)
	if err != nil {
		bindError(c, err)
		return
	}

	var qp filters.MatchHistoryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		bindError(c, err)
		return
	}

	filter, err := filters.NewMatchHistoryFilter(pp, &qp)
	if err != nil {
		respondError(c, err)
		return
	}

	search := beginSearch(c, h.Sessions, "history")
	defer search.End()

	result, err := h.MatchService.GetMatchHistory(search.Context(), filter)
	if result, err = data.Apply(search, result, err); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetPlayerRankings handles the ranked entries of a puuid.
func (h *PlayerHandler) GetPlayerRankings(c *gin.Context) {
	var pp filters.RankingsURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		bindError(c, err)
		return
	}

	filter, err := filters.NewRankingsFilter(&pp)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.PlayerService.GetRankings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
