package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/jengzang/ocean-query-backend/internal/service"
	"github.com/jengzang/ocean-query-backend/pkg/response"
)

// ReadingHandler handles HTTP requests for the data explorer
type ReadingHandler struct {
	readingService *service.ReadingService
}

// NewReadingHandler creates a new reading handler
func NewReadingHandler(readingService *service.ReadingService) *ReadingHandler {
	return &ReadingHandler{
		readingService: readingService,
	}
}

// GetReadings handles GET /api/v1/readings
func (h *ReadingHandler) GetReadings(c *gin.Context) {
	var filter models.ReadingFilter

	// Parse query parameters
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.readingService.GetReadings(filter)
	if errors.Is(err, service.ErrInvalidFilter) {
		response.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		c.Error(err)
		response.InternalError(c, "Failed to get readings")
		return
	}

	response.Success(c, result)
}

// GetReadingByID handles GET /api/v1/readings/:id
func (h *ReadingHandler) GetReadingByID(c *gin.Context) {
	reading, err := h.readingService.GetReadingByID(c.Param("id"))
	if errors.Is(err, service.ErrReadingNotFound) {
		response.NotFound(c, "Reading not found")
		return
	}
	if err != nil {
		c.Error(err)
		response.InternalError(c, "Failed to get reading")
		return
	}

	response.Success(c, reading)
}
