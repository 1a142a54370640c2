package query

import "github.com/jengzang/ocean-query-backend/internal/models"

// Samples are the suggested questions shown under the chat box
var Samples = []string{
	"Show me temperature near Chennai",
	"Plot salinity vs depth",
	"Where is oxygen low?",
	"Temperature trend last 7 days",
	"Show float locations on map",
}

var replies = map[models.Intent]string{
	models.IntentTemperature:      "Here's the temperature data you requested. The visualization shows current temperature readings from our ARGO floats.",
	models.IntentTemperatureTrend: "I've generated a temperature trend analysis for the last 7 days showing how temperature varies over time.",
	models.IntentSalinity:         "Displaying salinity measurements from our ocean monitoring network. You can see how salinity varies with depth and location.",
	models.IntentOxygen:           "Here are the oxygen concentration levels. Lower oxygen zones are highlighted in red on the visualization.",
	models.IntentLocations:        "Showing all active ARGO float positions on the map. Each point represents real-time ocean monitoring data.",
	models.IntentDepthProfile:     "Generated a depth profile showing how ocean parameters change with depth.",
}

// Reply returns the assistant message for an intent.
// General questions echo the question back.
func Reply(intent models.Intent, text string) string {
	if msg, ok := replies[intent]; ok {
		return msg
	}
	return `I understand you're asking about: "` + text + `". Let me show you relevant ocean data visualizations.`
}
