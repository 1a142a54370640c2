package models

import "time"

// Depths are the fixed sampling depths in meters, shallowest first.
// They double as the depth buckets for every per-depth aggregate.
var Depths = []int{10, 50, 100, 200, 500, 1000}

// IsValidDepth reports whether depth is one of the fixed sampling depths
func IsValidDepth(depth int) bool {
	for _, d := range Depths {
		if d == depth {
			return true
		}
	}
	return false
}

// Site is a named monitoring location with its nominal coordinate
type Site struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Sites are the coastal locations covered by the float network
var Sites = []Site{
	{Name: "Chennai", Latitude: 13.0827, Longitude: 80.2707},
	{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
	{Name: "Kochi", Latitude: 9.9312, Longitude: 76.2673},
	{Name: "Visakhapatnam", Latitude: 17.6868, Longitude: 83.2185},
	{Name: "Goa", Latitude: 15.2993, Longitude: 74.1240},
}

// Reading represents one synthetic sensor observation at a site, day and depth
type Reading struct {
	ID          string    `json:"id" db:"id"`                   // <siteIndex>-<dayOffset>-<depthIndex>
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`     // UTC midnight of the sampled day
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Depth       int       `json:"depth" db:"depth"`             // Meters
	Temperature float64   `json:"temperature" db:"temperature"` // °C
	Salinity    float64   `json:"salinity" db:"salinity"`       // PSU
	Oxygen      float64   `json:"oxygen" db:"oxygen"`           // μmol/kg
	Location    string    `json:"location" db:"location"`
}

// ReadingsResponse represents a paginated response of readings
type ReadingsResponse struct {
	Data       []Reading `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}
