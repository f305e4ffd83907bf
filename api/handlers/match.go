package handlers

import (
	"leaguedash/api/filters"
	matchservice "leaguedash/api/services/match"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MatchHandler is the handler for the match endpoints.
type MatchHandler struct {
	MatchService *matchservice.MatchService
}

type MatchHandlerDependencies struct {
	MatchService *matchservice.MatchService
}

// NewMatchHandler creates a new instance of the match handler.
func NewMatchHandler(deps *MatchHandlerDependencies) *MatchHandler {
	return &MatchHandler{
		MatchService: deps.MatchService,
	}
}

// Helper to bind the default URI params for matches.
func (h *MatchHandler) bindURIParams(c *gin.Context) (*filters.MatchURIParams, error) {
	var mp filters.MatchURIParams
	if err := c.ShouldBindUri(&mp); err != nil {
		return nil, err
	}
	return &mp, nil
}

// GetMatch returns the expanded view of a match for the viewer.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	mp, err := h.bindURIParams(c)
	if err != nil {
		bindError(c, err)
		return
	}

	var qp filters.MatchQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		bindError(c, err)
		return
	}

	filter, err := filters.NewMatchFilter(mp, &qp)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.MatchService.GetMatch(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
