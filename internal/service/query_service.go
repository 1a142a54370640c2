package service

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jengzang/ocean-query-backend/internal/dataset"
	"github.com/jengzang/ocean-query-backend/internal/metrics"
	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/jengzang/ocean-query-backend/internal/query"
	"github.com/jengzang/ocean-query-backend/internal/render"
	"github.com/jengzang/ocean-query-backend/internal/selector"
	"github.com/jengzang/ocean-query-backend/internal/viz"
	"go.uber.org/zap"
)

// QueryResult is the answer to one dashboard question
type QueryResult struct {
	Sequence       uint64           `json:"sequence"` // Increases with every answer; clients display the highest
	Query          string           `json:"query"`
	Intent         models.Intent    `json:"intent"`
	PreviousIntent models.Intent    `json:"previousIntent,omitempty"`
	IntentChanged  bool             `json:"intentChanged"`
	Reply          string           `json:"reply"`
	DisplayAfterMs int64            `json:"displayAfterMs"`
	Chart          models.ChartSpec `json:"chart"`
}

// QueryService answers free-text questions about the reading store
type QueryService struct {
	store   *dataset.Store
	metrics *metrics.Collector
	logger  *zap.Logger
	delay   time.Duration
	seq     atomic.Uint64
}

// NewQueryService creates a new query service
func NewQueryService(store *dataset.Store, collector *metrics.Collector, logger *zap.Logger, delay time.Duration) *QueryService {
	return &QueryService{
		store:   store,
		metrics: collector,
		logger:  logger,
		delay:   delay,
	}
}

// Ask classifies the question, selects its data and shapes the chart.
// It never fails; unusable input is answered as a general question.
func (s *QueryService) Ask(req models.QueryRequest) *QueryResult {
	text := query.Text(req.Query)
	intent, chart := s.answer(text)

	previous := models.Intent(req.PreviousIntent)
	if !previous.IsValid() {
		previous = ""
	}

	result := &QueryResult{
		Sequence:       s.seq.Add(1),
		Query:          text,
		Intent:         intent,
		PreviousIntent: previous,
		IntentChanged:  previous != "" && previous != intent,
		Reply:          query.Reply(intent, text),
		DisplayAfterMs: s.delay.Milliseconds(),
		Chart:          chart,
	}

	s.metrics.Queries.WithLabelValues(string(intent)).Inc()
	s.logger.Debug("Answered query",
		zap.Uint64("sequence", result.Sequence),
		zap.String("intent", string(intent)),
		zap.Bool("intentChanged", result.IntentChanged),
	)

	return result
}

// RenderChart draws the chart answering req as a PNG image
func (s *QueryService) RenderChart(req models.QueryRequest, width, height int) ([]byte, error) {
	intent, chart := s.answer(query.Text(req.Query))

	var buf bytes.Buffer
	err := render.PNG(chart, width, height, &buf)

	outcome := "ok"
	switch {
	case errors.Is(err, render.ErrNotRenderable):
		outcome = "not_renderable"
	case errors.Is(err, render.ErrNoData):
		outcome = "no_data"
	case err != nil:
		outcome = "error"
	}
	s.metrics.ChartRenders.WithLabelValues(string(chart.Kind), outcome).Inc()

	if err != nil {
		s.logger.Debug("Chart not rendered",
			zap.String("intent", string(intent)),
			zap.String("kind", string(chart.Kind)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to render %s chart: %w", intent, err)
	}

	return buf.Bytes(), nil
}

// Samples returns the suggested questions
func (s *QueryService) Samples() []string {
	return query.Samples
}

// Locations returns the monitored sites with their nominal coordinates
func (s *QueryService) Locations() []models.Site {
	return models.Sites
}

func (s *QueryService) answer(text string) (models.Intent, models.ChartSpec) {
	intent := query.Classify(text)
	sel := selector.Select(intent, text, s.store)
	return intent, viz.Build(sel)
}
