package handlers

import (
	"leaguedash/api/filters"
	staticservice "leaguedash/api/services/static"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves queues and asset versions.
type StaticHandler struct {
	StaticService *staticservice.StaticService
}

type StaticHandlerDependencies struct {
	StaticService *staticservice.StaticService
}

func NewStaticHandler(deps *StaticHandlerDependencies) *StaticHandler {
	return &StaticHandler{
		StaticService: deps.StaticService,
	}
}

// GetQueue returns the classification of a queue id.
func (h *StaticHandler) GetQueue(c *gin.Context) {
	var qp filters.QueueURIParams
	if err := c.ShouldBindUri(&qp); err != nil {
		bindError(c, err)
		return
	}

	queueID, err := filters.ParseQueueID(&qp)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": h.StaticService.ClassifyQueue(queueID)})
}

// GetAssetVersion returns the asset version of a game version.
func (h *StaticHandler) GetAssetVersion(c *gin.Context) {
	var qp filters.VersionQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		bindError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": h.StaticService.GetAssetVersion(qp.GameVersion)})
}
