package handler

import (
	reportapp "github.com/fruitsales/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// StatisticsHandler handles sales statistics API endpoints
type StatisticsHandler struct {
	BaseHandler
	statisticsService *reportapp.StatisticsService
}

// NewStatisticsHandler creates a new StatisticsHandler
func NewStatisticsHandler(statisticsService *reportapp.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// Summary returns the all-time total plus the recent monthly and daily
// breakdowns by fruit
func (h *StatisticsHandler) Summary(c *gin.Context) {
	summary, err := h.statisticsService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
