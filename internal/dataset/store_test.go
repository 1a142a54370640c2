package dataset

import (
	"testing"
	"time"

	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreByLocation(t *testing.T) {
	store := Generate(NewSource(3), testNow)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "exact name", query: "Chennai", want: 180},
		{name: "lower case", query: "mumbai", want: 180},
		{name: "substring", query: "visakha", want: 180},
		{name: "empty matches all", query: "", want: 900},
		{name: "unknown", query: "Atlantis", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, store.ByLocation(tt.query), tt.want)
		})
	}
}

func TestStoreByDepthRange(t *testing.T) {
	store := Generate(NewSource(3), testNow)

	got := store.ByDepthRange(50, 200)
	assert.Len(t, got, 5*30*3)
	for _, r := range got {
		assert.True(t, r.Depth >= 50 && r.Depth <= 200)
	}

	assert.Empty(t, store.ByDepthRange(1001, 5000))
}

func TestStoreRecent(t *testing.T) {
	store := Generate(NewSource(3), testNow)

	recent := store.Recent(7)
	assert.Len(t, recent, 5*7*6)
	cutoff := store.Anchor().AddDate(0, 0, -6)
	for _, r := range recent {
		assert.False(t, r.Timestamp.Before(cutoff))
	}

	assert.Len(t, store.Recent(30), 900)
	assert.Len(t, store.Recent(90), 900)
	assert.Empty(t, store.Recent(0))
}

func TestStoreIsReadOnly(t *testing.T) {
	store := Generate(NewSource(3), testNow)

	all := store.All()
	all[0].Temperature = -999
	all[0].Location = "mutated"

	first := store.Head(1)
	require.Len(t, first, 1)
	assert.NotEqual(t, -999.0, first[0].Temperature)
	assert.NotEqual(t, "mutated", first[0].Location)
}

func TestStoreHead(t *testing.T) {
	store := Generate(NewSource(3), testNow)

	assert.Len(t, store.Head(50), 50)
	assert.Len(t, store.Head(5000), 900)
	assert.Empty(t, store.Head(-1))
}

func TestEmptyStore(t *testing.T) {
	store := NewStore(nil, time.Time{})

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.All())
	assert.Empty(t, store.ByLocation("chennai"))
	assert.Empty(t, store.Recent(7))
	assert.NotEmpty(t, store.GenerationID())

	_, ok := store.Find("0-0-0")
	assert.False(t, ok)
}

func TestNewStoreCopiesInput(t *testing.T) {
	in := []models.Reading{{ID: "a", Location: "Goa", Depth: 10}}
	store := NewStore(in, testNow)
	in[0].Location = "changed"

	r, ok := store.Find("a")
	require.True(t, ok)
	assert.Equal(t, "Goa", r.Location)
}
