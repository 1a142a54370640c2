package repository

import (
	"testing"
	"time"

	"github.com/jengzang/ocean-query-backend/internal/database"
	"github.com/jengzang/ocean-query-backend/internal/dataset"
	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func setupRepository(t *testing.T) (*ReadingRepository, *dataset.Store) {
	t.Helper()

	db, err := database.Open(database.Config{Path: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := dataset.Generate(dataset.NewSource(11), testNow)
	repo := NewReadingRepository(db)
	require.NoError(t, repo.ReplaceAll(store.GenerationID(), store.All()))

	return repo, store
}

func TestReplaceAll(t *testing.T) {
	repo, store := setupRepository(t)

	total, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 900, total)

	// A second load replaces rather than appends
	require.NoError(t, repo.ReplaceAll(store.GenerationID(), store.Head(10)))
	total, err = repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 10, total)
}

func TestReplaceAllRollsBackOnFailure(t *testing.T) {
	repo, store := setupRepository(t)

	// The duplicate primary key fails the second insert
	head := store.Head(2)
	head[1].ID = head[0].ID

	err := repo.ReplaceAll("next-run", head)
	require.Error(t, err)

	total, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 900, total)
}

func TestGetReadingsFilters(t *testing.T) {
	repo, _ := setupRepository(t)

	tests := []struct {
		name   string
		filter models.ReadingFilter
		total  int64
		check  func(t *testing.T, r models.Reading)
	}{
		{
			name:   "no filter",
			filter: models.ReadingFilter{},
			total:  900,
		},
		{
			name:   "search ignores case",
			filter: models.ReadingFilter{Search: "CHEN"},
			total:  180,
			check: func(t *testing.T, r models.Reading) {
				assert.Equal(t, "Chennai", r.Location)
			},
		},
		{
			name:   "search treats wildcards literally",
			filter: models.ReadingFilter{Search: "%"},
			total:  0,
		},
		{
			name:   "exact location",
			filter: models.ReadingFilter{Location: "Goa"},
			total:  180,
		},
		{
			name:   "exact depth",
			filter: models.ReadingFilter{Depth: 500},
			total:  150,
			check: func(t *testing.T, r models.Reading) {
				assert.Equal(t, 500, r.Depth)
			},
		},
		{
			name:   "depth range",
			filter: models.ReadingFilter{MinDepth: 50, MaxDepth: 200},
			total:  450,
			check: func(t *testing.T, r models.Reading) {
				assert.True(t, r.Depth >= 50 && r.Depth <= 200)
			},
		},
		{
			name:   "recent days",
			filter: models.ReadingFilter{Days: 7},
			total:  210,
			check: func(t *testing.T, r models.Reading) {
				assert.False(t, r.Timestamp.Before(dataset.StartOfDay(testNow).AddDate(0, 0, -6)))
			},
		},
		{
			name:   "combined",
			filter: models.ReadingFilter{Search: "mumbai", Depth: 10, Days: 3},
			total:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readings, total, err := repo.GetReadings(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
			if tt.check != nil {
				for _, r := range readings {
					tt.check(t, r)
				}
			}
		})
	}
}

func TestGetReadingsOrderingAndPaging(t *testing.T) {
	repo, _ := setupRepository(t)

	first, total, err := repo.GetReadings(models.ReadingFilter{Page: 1, PageSize: 40})
	require.NoError(t, err)
	assert.EqualValues(t, 900, total)
	require.Len(t, first, 40)

	// Newest day first, then location, then depth
	assert.True(t, first[0].Timestamp.Equal(dataset.StartOfDay(testNow)))
	assert.Equal(t, "Chennai", first[0].Location)
	assert.Equal(t, 10, first[0].Depth)
	assert.Equal(t, 50, first[1].Depth)
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		assert.False(t, cur.Timestamp.After(prev.Timestamp))
		if cur.Timestamp.Equal(prev.Timestamp) && cur.Location == prev.Location {
			assert.Greater(t, cur.Depth, prev.Depth)
		}
	}

	second, _, err := repo.GetReadings(models.ReadingFilter{Page: 2, PageSize: 40})
	require.NoError(t, err)
	require.Len(t, second, 40)
	assert.NotEqual(t, first[0].ID, second[0].ID)

	last, _, err := repo.GetReadings(models.ReadingFilter{Page: 23, PageSize: 40})
	require.NoError(t, err)
	assert.Len(t, last, 20)

	beyond, _, err := repo.GetReadings(models.ReadingFilter{Page: 99, PageSize: 40})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestGetReadingByID(t *testing.T) {
	repo, store := setupRepository(t)

	want, ok := store.Find("2-4-5")
	require.True(t, ok)

	got, err := repo.GetReadingByID("2-4-5")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Location, got.Location)
	assert.Equal(t, want.Depth, got.Depth)
	assert.True(t, want.Timestamp.Equal(got.Timestamp))
	assert.InDelta(t, want.Oxygen, got.Oxygen, 1e-9)

	missing, err := repo.GetReadingByID("9-9-9")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetReadingsEmptyMirror(t *testing.T) {
	db, err := database.Open(database.Config{Path: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	readings, total, err := NewReadingRepository(db).GetReadings(models.ReadingFilter{Days: 7})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, readings)
}

