package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jengzang/ocean-query-backend/internal/dataset"
	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/jengzang/ocean-query-backend/internal/selector"
	"github.com/jengzang/ocean-query-backend/internal/stats"
	"github.com/jengzang/ocean-query-backend/internal/viz"
)

// ErrInvalidTimeRange is returned for an unknown analytics range
var ErrInvalidTimeRange = errors.New("invalid time range")

// DefaultTimeRange applies when no range is requested
const DefaultTimeRange = "7days"

var timeRanges = map[string]int{
	"7days":  7,
	"30days": 30,
	"90days": 90,
}

// AnalyticsService summarizes recent readings
type AnalyticsService struct {
	store *dataset.Store
}

// NewAnalyticsService creates a new analytics service. A nil store is
// summarized as an empty one.
func NewAnalyticsService(store *dataset.Store) *AnalyticsService {
	if store == nil {
		store = dataset.NewStore(nil, time.Time{})
	}
	return &AnalyticsService{store: store}
}

// Summary aggregates the readings of the most recent days named by filter.Range
func (s *AnalyticsService) Summary(filter models.AnalyticsFilter) (*models.AnalyticsSummary, error) {
	if filter.Range == "" {
		filter.Range = DefaultTimeRange
	}
	days, ok := timeRanges[filter.Range]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeRange, filter.Range)
	}

	readings := s.store.Recent(days)

	summary := &models.AnalyticsSummary{
		Range:          filter.Range,
		Days:           days,
		TotalReadings:  len(readings),
		AvgTemperature: stats.RoundTo(stats.MeanOf(readings, func(r models.Reading) float64 { return r.Temperature }), 2),
		AvgSalinity:    stats.RoundTo(stats.MeanOf(readings, func(r models.Reading) float64 { return r.Salinity }), 2),
		AvgOxygen:      stats.RoundTo(stats.MeanOf(readings, func(r models.Reading) float64 { return r.Oxygen }), 2),
		ByLocation:     countByLocation(readings),
		ByDepth:        depthStats(readings),
	}

	temps := make([]float64, len(readings))
	oxygen := make([]float64, len(readings))
	for i, r := range readings {
		temps[i] = r.Temperature
		oxygen[i] = r.Oxygen
	}
	summary.Temperature = distribution(temps)
	summary.Oxygen = distribution(oxygen)
	summary.LowOxygenPercent = stats.RoundTo(stats.PercentileRank(oxygen, selector.LowOxygenThreshold), 2)

	trend := viz.Build(selector.Selection{
		Intent:   models.IntentTemperatureTrend,
		Readings: selector.First(readings, selector.TemperatureLimit),
	})
	trend.Title = fmt.Sprintf("Temperature Trend (Last %d Days)", days)
	summary.TemperatureTrend = trend

	return summary, nil
}

// countByLocation counts readings per location in first-seen order
func countByLocation(readings []models.Reading) []models.LocationStat {
	index := make(map[string]int)
	out := []models.LocationStat{}
	for _, r := range readings {
		i, ok := index[r.Location]
		if !ok {
			i = len(out)
			index[r.Location] = i
			out = append(out, models.LocationStat{Location: r.Location})
		}
		out[i].Count++
	}
	return out
}

func depthStats(readings []models.Reading) []models.DepthStat {
	temps := selector.MeanByDepth(readings, func(r models.Reading) float64 { return r.Temperature })
	salts := selector.MeanByDepth(readings, func(r models.Reading) float64 { return r.Salinity })

	out := make([]models.DepthStat, len(temps))
	for i, t := range temps {
		out[i] = models.DepthStat{
			Depth:       t.Depth,
			Label:       t.Label,
			Temperature: stats.RoundTo(t.Value, 2),
			Salinity:    stats.RoundTo(salts[i].Value, 2),
			Count:       t.Count,
		}
	}
	return out
}

func distribution(values []float64) models.Distribution {
	s := stats.FiveNumberSummary(values)
	return models.Distribution{
		Min:    stats.RoundTo(s.Min, 2),
		Q1:     stats.RoundTo(s.Q1, 2),
		Median: stats.RoundTo(s.Median, 2),
		Q3:     stats.RoundTo(s.Q3, 2),
		Max:    stats.RoundTo(s.Max, 2),
	}
}
