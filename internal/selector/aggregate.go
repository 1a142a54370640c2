package selector

import (
	"fmt"

	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/jengzang/ocean-query-backend/internal/spatial"
	"github.com/jengzang/ocean-query-backend/internal/stats"
)

// DepthLabel formats a depth bucket for chart axes, e.g. "100m"
func DepthLabel(depth int) string {
	return fmt.Sprintf("%dm", depth)
}

// MeanByDepth averages value over the readings of each fixed depth.
// It always returns one bucket per depth, shallowest first; empty buckets
// are zero.
func MeanByDepth(readings []models.Reading, value func(models.Reading) float64) []DepthBucket {
	grouped := make(map[int][]models.Reading, len(models.Depths))
	for _, r := range readings {
		grouped[r.Depth] = append(grouped[r.Depth], r)
	}

	buckets := make([]DepthBucket, 0, len(models.Depths))
	for _, depth := range models.Depths {
		group := grouped[depth]
		buckets = append(buckets, DepthBucket{
			Depth: depth,
			Label: DepthLabel(depth),
			Value: stats.MeanOf(group, value),
			Count: len(group),
		})
	}
	return buckets
}

// SummarizeLocations groups readings by location in first-seen order and
// computes the mean position, the reading count and how far the farthest
// reading lies from the mean position
func SummarizeLocations(readings []models.Reading) []models.LocationSummary {
	grouped := make(map[string][]models.Reading)
	order := make([]string, 0)

	for _, r := range readings {
		if _, exists := grouped[r.Location]; !exists {
			order = append(order, r.Location)
		}
		grouped[r.Location] = append(grouped[r.Location], r)
	}

	summaries := make([]models.LocationSummary, 0, len(order))
	for _, name := range order {
		group := grouped[name]

		lats := make([]float64, len(group))
		lons := make([]float64, len(group))
		for i, r := range group {
			lats[i] = r.Latitude
			lons[i] = r.Longitude
		}

		lat := stats.Mean(lats)
		lon := stats.Mean(lons)
		summaries = append(summaries, models.LocationSummary{
			Location:  name,
			Latitude:  lat,
			Longitude: lon,
			Count:     len(group),
			SpreadKm:  spatial.MaxDistanceKm(lat, lon, lats, lons),
		})
	}
	return summaries
}
