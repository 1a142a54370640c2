package spatial

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is Earth's mean radius in kilometers
const EarthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance between two points in kilometers
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// MaxDistanceKm returns the largest great-circle distance in kilometers from
// the centre point to any of the given positions
func MaxDistanceKm(centerLat, centerLon float64, lats, lons []float64) float64 {
	var max float64
	for i := range lats {
		if i >= len(lons) {
			break
		}
		if d := DistanceKm(centerLat, centerLon, lats[i], lons[i]); d > max {
			max = d
		}
	}
	return max
}
