package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(13.08, 80.27, 13.08, 80.27))

	// One degree of latitude is roughly 111 km
	assert.InDelta(t, 111.195, DistanceKm(10, 76, 11, 76), 0.05)

	// Chennai to Mumbai
	assert.InDelta(t, 1030, DistanceKm(13.0827, 80.2707, 19.0760, 72.8777), 20)
}

func TestMaxDistanceKm(t *testing.T) {
	lats := []float64{10, 10.5, 9.9}
	lons := []float64{76, 76, 76}

	got := MaxDistanceKm(10, 76, lats, lons)
	assert.InDelta(t, 55.6, got, 0.5)

	assert.Equal(t, 0.0, MaxDistanceKm(10, 76, nil, nil))
}
