// Package viz maps intents to chart descriptors and shapes selected data
// into them.
package viz

import (
	"fmt"

	"github.com/jengzang/ocean-query-backend/internal/models"
)

// Series and marker colours
const (
	ColorTemperature  = "#3B82F6"
	ColorSalinity     = "#14B8A6"
	ColorDepthProfile = "#6366F1"
	ColorLowOxygen    = "#EF4444"
	ColorOxygen       = "#22C55E"
)

// Titles used when shaping temperature charts
const (
	TitleTemperatureRecent   = "Temperature Trend (Last 7 Days)"
	titleTemperatureLocation = "Temperature in %s"
)

var templates = map[models.Intent]func() models.ChartSpec{
	models.IntentTemperature:      temperatureTemplate,
	models.IntentTemperatureTrend: temperatureTemplate,
	models.IntentSalinity: func() models.ChartSpec {
		return models.ChartSpec{
			Kind:   models.ChartBar,
			Title:  "Salinity vs Depth",
			XAxis:  "Depth",
			YAxis:  "Salinity (PSU)",
			Series: []models.ChartSeries{{Name: "Salinity (PSU)", Color: ColorSalinity}},
		}
	},
	models.IntentOxygen: func() models.ChartSpec {
		return models.ChartSpec{
			Kind:  models.ChartScatter,
			Title: "Oxygen vs Depth (Red = Low Oxygen Zones)",
			XAxis: "Depth (m)",
			YAxis: "Oxygen (μmol/kg)",
			Legend: []models.LegendEntry{
				{Label: "Low oxygen (< 100 μmol/kg)", Color: ColorLowOxygen},
				{Label: "Normal oxygen", Color: ColorOxygen},
			},
		}
	},
	models.IntentLocations: func() models.ChartSpec {
		return models.ChartSpec{
			Kind:  models.ChartSummaryList,
			Title: "ARGO Float Locations",
		}
	},
	models.IntentDepthProfile: func() models.ChartSpec {
		return models.ChartSpec{
			Kind:   models.ChartLine,
			Title:  "Temperature vs Depth Profile",
			XAxis:  "Depth",
			YAxis:  "Temperature (°C)",
			Series: []models.ChartSeries{{Name: "Average Temperature (°C)", Color: ColorDepthProfile}},
		}
	},
	models.IntentGeneral: infoTemplate,
}

func temperatureTemplate() models.ChartSpec {
	return models.ChartSpec{
		Kind:   models.ChartLine,
		Title:  TitleTemperatureRecent,
		XAxis:  "Date",
		YAxis:  "Temperature (°C)",
		Series: []models.ChartSeries{{Name: "Temperature (°C)", Color: ColorTemperature}},
	}
}

func infoTemplate() models.ChartSpec {
	return models.ChartSpec{
		Kind:    models.ChartInfo,
		Title:   "Ocean Data Visualizations",
		Message: "Ask me about temperature, salinity, oxygen levels, or float locations to see interactive visualizations.",
		Highlights: []models.Highlight{
			{Label: "Temperature", Value: "15-30°C range"},
			{Label: "Salinity", Value: "34-35 PSU"},
			{Label: "Oxygen", Value: "80-200 μmol/kg"},
			{Label: "Active Floats", Value: fmt.Sprintf("%d locations", len(models.Sites))},
		},
	}
}

// Resolve returns the empty chart template for intent. It is total: any
// value outside the intent set gets the informational view.
func Resolve(intent models.Intent) models.ChartSpec {
	if tmpl, ok := templates[intent]; ok {
		return tmpl()
	}
	return infoTemplate()
}
