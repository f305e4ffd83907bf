package handlers

import (
	"context"
	"errors"
	"leaguedash/api/converters"
	"leaguedash/api/filters"
	"leaguedash/fetcher/data"
	"leaguedash/fetcher/requests"
	"leaguedash/pkg/messages"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientIDHeader identifies the client of a search. A newer search of the same
// client supersedes the one in flight.
const ClientIDHeader = "X-Client-Id"

// respondError maps an error to its status and body.
func respondError(c *gin.Context, err error) {
	var validationErr *filters.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.Is(err, data.ErrSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, converters.ErrParticipantNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": messages.ParticipantNotFound})
	case requests.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "hint": messages.NotFoundHint})
	case errors.Is(err, requests.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": messages.TransientFailure, "retryable": true})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": messages.TransientFailure, "retryable": true})
	}
}

// bindError answers a request whose params couldn't be bound.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// beginSearch starts a search of the requesting client, scoped by kind so a
// history page doesn't supersede a profile search.
func beginSearch(c *gin.Context, sessions *data.SessionRegistry, kind string) *data.Search {
	clientID := c.GetHeader(ClientIDHeader)
	if clientID != "" {
		clientID = kind + ":" + clientID
	}
	return sessions.Begin(c.Request.Context(), clientID)
}
