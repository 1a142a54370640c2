package models

// AnalyticsSummary aggregates the readings of a recent time window
type AnalyticsSummary struct {
	Range            string         `json:"range"`
	Days             int            `json:"days"`
	TotalReadings    int            `json:"totalReadings"`
	AvgTemperature   float64        `json:"avgTemperature"`
	AvgSalinity      float64        `json:"avgSalinity"`
	AvgOxygen        float64        `json:"avgOxygen"`
	LowOxygenPercent float64        `json:"lowOxygenPercent"` // Share of readings below 100 μmol/kg
	Temperature      Distribution   `json:"temperature"`
	Oxygen           Distribution   `json:"oxygen"`
	ByLocation       []LocationStat `json:"byLocation"`
	ByDepth          []DepthStat    `json:"byDepth"`
	TemperatureTrend ChartSpec      `json:"temperatureTrend"`
}

// LocationStat is the reading count of one location
type LocationStat struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// DepthStat holds per-depth means
type DepthStat struct {
	Depth       int     `json:"depth"`
	Label       string  `json:"label"`
	Temperature float64 `json:"temperature"`
	Salinity    float64 `json:"salinity"`
	Count       int     `json:"count"`
}

// Distribution is a five-number summary of one measurement
type Distribution struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}
