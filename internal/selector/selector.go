// Package selector derives the subset or aggregate of readings that a query
// intent asks for. Every transform is pure and reads the store without
// modifying it.
package selector

import (
	"time"

	"github.com/jengzang/ocean-query-backend/internal/dataset"
	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/jengzang/ocean-query-backend/internal/query"
)

const (
	// TemperatureLimit caps the readings shown on a temperature chart.
	// The first matches in store order are kept; no sampling is applied.
	TemperatureLimit = 20

	// OxygenLimit is how many readings from the head of the store the
	// oxygen scatter shows
	OxygenLimit = 50

	// LowOxygenThreshold in μmol/kg; readings strictly below it are low
	LowOxygenThreshold = 100.0

	// RecentDays is the window used when a temperature query names no location
	RecentDays = 7
)

// Source is the read-only view of the reading store the selector needs
type Source interface {
	All() []models.Reading
	Head(n int) []models.Reading
	ByLocation(name string) []models.Reading
	Recent(days int) []models.Reading
}

// DepthBucket is one per-depth aggregate
type DepthBucket struct {
	Depth int     `json:"depth"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// OxygenPoint pairs a reading's oxygen value with its depth
type OxygenPoint struct {
	ID     string  `json:"id"`
	Depth  int     `json:"depth"`
	Oxygen float64 `json:"oxygen"`
	Low    bool    `json:"low"`
}

// Selection is the data behind one query. Which fields are set depends on
// the intent.
type Selection struct {
	Intent    models.Intent            `json:"intent"`
	Location  string                   `json:"location,omitempty"` // Site named in a temperature query
	Readings  []models.Reading         `json:"readings,omitempty"`
	Buckets   []DepthBucket            `json:"buckets,omitempty"`
	Oxygen    []OxygenPoint            `json:"oxygen,omitempty"`
	Locations []models.LocationSummary `json:"locations,omitempty"`
	Echo      string                   `json:"echo,omitempty"`
}

type selectFunc func(text string, src Source) Selection

var selectors = map[models.Intent]selectFunc{
	models.IntentTemperature:      selectTemperature,
	models.IntentTemperatureTrend: selectTemperature,
	models.IntentSalinity:         selectSalinity,
	models.IntentOxygen:           selectOxygen,
	models.IntentLocations:        selectLocations,
	models.IntentDepthProfile:     selectDepthProfile,
	models.IntentGeneral:          selectGeneral,
}

// Select returns the data for intent. Unknown intents are treated as
// general and a nil source, including a nil *dataset.Store, behaves like
// an empty store.
func Select(intent models.Intent, text string, src Source) Selection {
	if store, ok := src.(*dataset.Store); src == nil || (ok && store == nil) {
		src = emptySource
	}

	fn, ok := selectors[intent]
	if !ok {
		intent = models.IntentGeneral
		fn = selectGeneral
	}

	sel := fn(text, src)
	sel.Intent = intent
	return sel
}

var emptySource Source = dataset.NewStore(nil, time.Time{})

func selectTemperature(text string, src Source) Selection {
	location := query.MatchLocation(text)

	var readings []models.Reading
	if location != "" {
		readings = src.ByLocation(location)
	} else {
		readings = src.Recent(RecentDays)
	}

	return Selection{
		Location: location,
		Readings: First(readings, TemperatureLimit),
	}
}

func selectSalinity(_ string, src Source) Selection {
	return Selection{
		Buckets: MeanByDepth(src.All(), func(r models.Reading) float64 { return r.Salinity }),
	}
}

func selectOxygen(_ string, src Source) Selection {
	head := src.Head(OxygenLimit)

	points := make([]OxygenPoint, 0, len(head))
	for _, r := range head {
		points = append(points, OxygenPoint{
			ID:     r.ID,
			Depth:  r.Depth,
			Oxygen: r.Oxygen,
			Low:    IsLowOxygen(r.Oxygen),
		})
	}
	return Selection{Oxygen: points}
}

func selectLocations(_ string, src Source) Selection {
	return Selection{Locations: SummarizeLocations(src.All())}
}

func selectDepthProfile(_ string, src Source) Selection {
	return Selection{
		Buckets: MeanByDepth(src.All(), func(r models.Reading) float64 { return r.Temperature }),
	}
}

func selectGeneral(text string, _ Source) Selection {
	return Selection{Echo: text}
}

// IsLowOxygen reports whether an oxygen value falls in a low-oxygen zone
func IsLowOxygen(oxygen float64) bool {
	return oxygen < LowOxygenThreshold
}

// First returns at most the first n readings
func First(readings []models.Reading, n int) []models.Reading {
	if len(readings) > n {
		return readings[:n]
	}
	return readings
}
