package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davimarquesgiareta/casa-nova/internal/service"
)

// StatsHandler serves the dashboard aggregation endpoints.
type StatsHandler struct {
	service service.StatsService
}

// NewStatsHandler creates a stats handler.
func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// MusicStats aggregates the song catalog.
func (h *StatsHandler) MusicStats(c *gin.Context) {
	stats, err := h.service.LibraryStats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ShowStats aggregates the shows and their setlists.
func (h *StatsHandler) ShowStats(c *gin.Context) {
	stats, err := h.service.ShowStats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
