package models

// Intent is the closed classification of a free-text query
type Intent string

const (
	IntentTemperature      Intent = "temperature"
	IntentTemperatureTrend Intent = "temperature-trend"
	IntentSalinity         Intent = "salinity"
	IntentOxygen           Intent = "oxygen"
	IntentLocations        Intent = "locations"
	IntentDepthProfile     Intent = "depth-profile"
	IntentGeneral          Intent = "general"
)

// Intents lists every intent value
var Intents = []Intent{
	IntentTemperature,
	IntentTemperatureTrend,
	IntentSalinity,
	IntentOxygen,
	IntentLocations,
	IntentDepthProfile,
	IntentGeneral,
}

// IsValid reports whether i belongs to the closed intent set
func (i Intent) IsValid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}
