package dataset

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jengzang/ocean-query-backend/internal/models"
)

// Store is the read-only set of readings produced by one generation run.
// Nothing mutates it after NewStore returns, so any number of goroutines
// may read it concurrently.
type Store struct {
	readings     []models.Reading
	anchor       time.Time
	generationID string
}

// NewStore wraps a copy of readings. anchor is the most recent sampled day.
func NewStore(readings []models.Reading, anchor time.Time) *Store {
	return &Store{
		readings:     slices.Clone(readings),
		anchor:       anchor,
		generationID: uuid.NewString(),
	}
}

// Len returns the number of readings
func (s *Store) Len() int {
	return len(s.readings)
}

// All returns every reading in generation order
func (s *Store) All() []models.Reading {
	return slices.Clone(s.readings)
}

// Head returns at most the first n readings in generation order
func (s *Store) Head(n int) []models.Reading {
	if n > len(s.readings) {
		n = len(s.readings)
	}
	if n < 0 {
		n = 0
	}
	return slices.Clone(s.readings[:n])
}

// Anchor returns the day that day offset 0 refers to
func (s *Store) Anchor() time.Time {
	return s.anchor
}

// GenerationID identifies the generation run that produced the store
func (s *Store) GenerationID() string {
	return s.generationID
}

// Find looks a reading up by ID
func (s *Store) Find(id string) (models.Reading, bool) {
	for _, r := range s.readings {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reading{}, false
}

// Filter returns the readings accepted by keep, in generation order
func (s *Store) Filter(keep func(models.Reading) bool) []models.Reading {
	var out []models.Reading
	for _, r := range s.readings {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ByLocation returns readings whose location contains name, ignoring case.
// An empty name matches every reading.
func (s *Store) ByLocation(name string) []models.Reading {
	needle := strings.ToLower(name)
	return s.Filter(func(r models.Reading) bool {
		return strings.Contains(strings.ToLower(r.Location), needle)
	})
}

// ByDepthRange returns readings with minDepth <= depth <= maxDepth
func (s *Store) ByDepthRange(minDepth, maxDepth int) []models.Reading {
	return s.Filter(func(r models.Reading) bool {
		return r.Depth >= minDepth && r.Depth <= maxDepth
	})
}

// Recent returns readings from the most recent days sampled days,
// counting the anchor day as the first
func (s *Store) Recent(days int) []models.Reading {
	if days <= 0 {
		return nil
	}
	cutoff := RecentCutoff(s.anchor, days)
	return s.Filter(func(r models.Reading) bool {
		return !r.Timestamp.Before(cutoff)
	})
}

// RecentCutoff is the earliest timestamp inside a window of days ending at anchor
func RecentCutoff(anchor time.Time, days int) time.Time {
	return anchor.AddDate(0, 0, -(days - 1))
}
