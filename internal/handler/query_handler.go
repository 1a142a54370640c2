package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/jengzang/ocean-query-backend/internal/render"
	"github.com/jengzang/ocean-query-backend/internal/service"
	"github.com/jengzang/ocean-query-backend/pkg/response"
)

// QueryHandler handles HTTP requests for dashboard questions
type QueryHandler struct {
	queryService *service.QueryService
	chartWidth   int
	chartHeight  int
}

// NewQueryHandler creates a new query handler. width and height are the
// default PNG dimensions.
func NewQueryHandler(queryService *service.QueryService, width, height int) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
		chartWidth:   width,
		chartHeight:  height,
	}
}

// Ask handles POST /api/v1/query
func (h *QueryHandler) Ask(c *gin.Context) {
	var req models.QueryRequest

	// An empty body is an empty question
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request body")
		return
	}

	response.Success(c, h.queryService.Ask(req))
}

// AskQuery handles GET /api/v1/query?q=
func (h *QueryHandler) AskQuery(c *gin.Context) {
	response.Success(c, h.queryService.Ask(queryFromParams(c)))
}

// Chart handles GET /api/v1/query/chart.png?q=
func (h *QueryHandler) Chart(c *gin.Context) {
	width, err := intParam(c, "width", h.chartWidth)
	if err != nil {
		response.BadRequest(c, "Invalid width parameter")
		return
	}
	height, err := intParam(c, "height", h.chartHeight)
	if err != nil {
		response.BadRequest(c, "Invalid height parameter")
		return
	}

	data, err := h.queryService.RenderChart(queryFromParams(c), width, height)
	if errors.Is(err, render.ErrNotRenderable) || errors.Is(err, render.ErrNoData) {
		response.NotFound(c, err.Error())
		return
	}
	if err != nil {
		c.Error(err)
		response.InternalError(c, "Failed to render chart")
		return
	}

	response.PNG(c, data)
}

// Samples handles GET /api/v1/query/samples
func (h *QueryHandler) Samples(c *gin.Context) {
	response.Success(c, h.queryService.Samples())
}

// Locations handles GET /api/v1/locations
func (h *QueryHandler) Locations(c *gin.Context) {
	response.Success(c, h.queryService.Locations())
}

func queryFromParams(c *gin.Context) models.QueryRequest {
	return models.QueryRequest{
		Query:          c.Query("q"),
		PreviousIntent: c.Query("previousIntent"),
	}
}

func intParam(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
