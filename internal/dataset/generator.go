package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/jengzang/ocean-query-backend/internal/models"
)

// Days is the number of daily samples per site and depth
const Days = 30

// Noise ranges of the synthetic measurements
const (
	temperatureNoise = 1.0
	salinityNoise    = 0.5
	oxygenNoise      = 20.0
	coordinateJitter = 0.5 // Full width, centred on the nominal coordinate
)

// NewSource returns the random source used for measurement noise.
// A zero seed draws one from the clock.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate synthesizes the full site × day × depth cross product.
// The structure is always the same; only the noise terms depend on rng.
// now fixes day offset 0 to its UTC calendar day.
func Generate(rng *rand.Rand, now time.Time) *Store {
	anchor := StartOfDay(now)
	readings := make([]models.Reading, 0, len(models.Sites)*Days*len(models.Depths))

	for siteIdx, site := range models.Sites {
		for day := 0; day < Days; day++ {
			ts := anchor.AddDate(0, 0, -day)

			for depthIdx, depth := range models.Depths {
				readings = append(readings, models.Reading{
					ID:          fmt.Sprintf("%d-%d-%d", siteIdx, day, depthIdx),
					Timestamp:   ts,
					Latitude:    site.Latitude + (rng.Float64()-0.5)*coordinateJitter,
					Longitude:   site.Longitude + (rng.Float64()-0.5)*coordinateJitter,
					Depth:       depth,
					Temperature: temperature(depth, day, rng.Float64()*temperatureNoise),
					Salinity:    34.5 + rng.Float64()*salinityNoise,
					Oxygen:      oxygen(depth, rng.Float64()*oxygenNoise),
					Location:    site.Name,
				})
			}
		}
	}

	return NewStore(readings, anchor)
}

func temperature(depth, day int, noise float64) float64 {
	return 28 - float64(depth)*0.02 + math.Sin(float64(day)*0.2)*2 + noise
}

func oxygen(depth int, noise float64) float64 {
	return math.Max(0, 180-float64(depth)*0.15+noise)
}

// StartOfDay truncates t to midnight UTC
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
