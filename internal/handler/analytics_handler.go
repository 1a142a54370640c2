package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/jengzang/ocean-query-backend/internal/service"
	"github.com/jengzang/ocean-query-backend/pkg/response"
)

// AnalyticsHandler handles HTTP requests for the analytics summary
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetSummary handles GET /api/v1/analytics?range=
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	var filter models.AnalyticsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	summary, err := h.analyticsService.Summary(filter)
	if errors.Is(err, service.ErrInvalidTimeRange) {
		response.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		c.Error(err)
		response.InternalError(c, "Failed to compute analytics")
		return
	}

	response.Success(c, summary)
}
