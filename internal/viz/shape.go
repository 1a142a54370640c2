package viz

import (
	"fmt"
	"slices"
	"time"

	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/jengzang/ocean-query-backend/internal/selector"
	"github.com/jengzang/ocean-query-backend/internal/stats"
)

// DateLabelLayout formats x-axis dates of temperature charts
const DateLabelLayout = "2006-01-02"

// Build resolves the template for sel.Intent and fills it with sel
func Build(sel selector.Selection) models.ChartSpec {
	return Shape(Resolve(sel.Intent), sel)
}

// Shape fills a chart template with the data of a selection
func Shape(spec models.ChartSpec, sel selector.Selection) models.ChartSpec {
	spec.Series = slices.Clone(spec.Series)

	switch sel.Intent {
	case models.IntentTemperature, models.IntentTemperatureTrend:
		shapeTemperature(&spec, sel)
	case models.IntentSalinity, models.IntentDepthProfile:
		shapeBuckets(&spec, sel.Buckets)
	case models.IntentOxygen:
		shapeOxygen(&spec, sel.Oxygen)
	case models.IntentLocations:
		spec.Summaries = sel.Locations
	}
	return spec
}

func shapeTemperature(spec *models.ChartSpec, sel selector.Selection) {
	if sel.Location != "" {
		spec.Title = fmt.Sprintf(titleTemperatureLocation, sel.Location)
	}

	// Chronological for display; the selection itself keeps store order
	readings := slices.Clone(sel.Readings)
	slices.SortStableFunc(readings, func(a, b models.Reading) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	labels := make([]string, 0, len(readings))
	values := make([]float64, 0, len(readings))
	for _, r := range readings {
		labels = append(labels, DateLabel(r.Timestamp))
		values = append(values, stats.RoundTo(r.Temperature, 2))
	}

	spec.Labels = labels
	setSeriesData(spec, values)
}

func shapeBuckets(spec *models.ChartSpec, buckets []selector.DepthBucket) {
	labels := make([]string, 0, len(buckets))
	values := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.Label)
		values = append(values, stats.RoundTo(b.Value, 2))
	}

	spec.Labels = labels
	setSeriesData(spec, values)
}

func shapeOxygen(spec *models.ChartSpec, points []selector.OxygenPoint) {
	spec.Points = make([]models.ScatterPoint, 0, len(points))
	for _, p := range points {
		color := ColorOxygen
		if p.Low {
			color = ColorLowOxygen
		}
		spec.Points = append(spec.Points, models.ScatterPoint{
			ID:    p.ID,
			X:     float64(p.Depth),
			Y:     stats.RoundTo(p.Oxygen, 2),
			Low:   p.Low,
			Color: color,
		})
	}
}

func setSeriesData(spec *models.ChartSpec, values []float64) {
	if len(spec.Series) == 0 {
		spec.Series = []models.ChartSeries{{Name: "Value"}}
	}
	spec.Series[0].Data = values
}

// DateLabel formats a reading timestamp for chart axes
func DateLabel(t time.Time) string {
	return t.UTC().Format(DateLabelLayout)
}
