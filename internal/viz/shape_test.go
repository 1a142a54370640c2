package viz

import (
	"sort"
	"testing"
	"time"

	"github.com/jengzang/ocean-query-backend/internal/dataset"
	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/jengzang/ocean-query-backend/internal/query"
	"github.com/jengzang/ocean-query-backend/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *dataset.Store {
	return dataset.Generate(dataset.NewSource(11), time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
}

func run(text string, store *dataset.Store) (models.Intent, models.ChartSpec) {
	intent := query.Classify(text)
	return intent, Build(selector.Select(intent, text, store))
}

func TestTemperatureNearChennai(t *testing.T) {
	intent, spec := run("Show me temperature near Chennai", newTestStore())

	assert.Equal(t, models.IntentTemperature, intent)
	assert.Equal(t, models.ChartLine, spec.Kind)
	assert.Equal(t, "Temperature in Chennai", spec.Title)
	require.Len(t, spec.Labels, selector.TemperatureLimit)
	require.Len(t, spec.Series, 1)
	assert.Len(t, spec.Series[0].Data, selector.TemperatureLimit)

	assert.True(t, sort.StringsAreSorted(spec.Labels), "labels should be chronological")
	for _, label := range spec.Labels {
		_, err := time.Parse(DateLabelLayout, label)
		assert.NoError(t, err)
	}
}

func TestTemperatureTrendWithoutLocation(t *testing.T) {
	intent, spec := run("Temperature trend last 7 days", newTestStore())

	assert.Equal(t, models.IntentTemperatureTrend, intent)
	assert.Equal(t, models.ChartLine, spec.Kind)
	assert.Equal(t, TitleTemperatureRecent, spec.Title)
	assert.Len(t, spec.Labels, selector.TemperatureLimit)
}

func TestOxygenScatter(t *testing.T) {
	intent, spec := run("Where is oxygen low?", newTestStore())

	assert.Equal(t, models.IntentOxygen, intent)
	assert.Equal(t, models.ChartScatter, spec.Kind)
	require.Len(t, spec.Points, selector.OxygenLimit)

	for _, p := range spec.Points {
		assert.True(t, models.IsValidDepth(int(p.X)))
		if p.Y < selector.LowOxygenThreshold {
			assert.True(t, p.Low)
			assert.Equal(t, ColorLowOxygen, p.Color)
		} else {
			assert.False(t, p.Low)
			assert.Equal(t, ColorOxygen, p.Color)
		}
	}
}

func TestSalinityBar(t *testing.T) {
	intent, spec := run("Plot salinity vs depth", newTestStore())

	assert.Equal(t, models.IntentSalinity, intent)
	assert.Equal(t, models.ChartBar, spec.Kind)
	assert.Equal(t, []string{"10m", "50m", "100m", "200m", "500m", "1000m"}, spec.Labels)
	require.Len(t, spec.Series, 1)
	assert.Len(t, spec.Series[0].Data, 6)
}

func TestLocationsSummary(t *testing.T) {
	store := newTestStore()
	intent, spec := run("Show float locations on map", store)

	assert.Equal(t, models.IntentLocations, intent)
	assert.Equal(t, models.ChartSummaryList, spec.Kind)
	require.Len(t, spec.Summaries, 5)

	total := 0
	for _, s := range spec.Summaries {
		total += s.Count
	}
	assert.Equal(t, store.Len(), total)
}

func TestDepthProfileLine(t *testing.T) {
	intent, spec := run("What happens with depth?", newTestStore())

	assert.Equal(t, models.IntentDepthProfile, intent)
	assert.Equal(t, models.ChartLine, spec.Kind)
	assert.Equal(t, "Depth", spec.XAxis)
	assert.Len(t, spec.Labels, 6)
}

func TestGeneralInfoView(t *testing.T) {
	intent, spec := run("banana", newTestStore())

	assert.Equal(t, models.IntentGeneral, intent)
	assert.Equal(t, models.ChartInfo, spec.Kind)
	assert.False(t, spec.HasData())
}

func TestShapeEmptySelection(t *testing.T) {
	empty := dataset.NewStore(nil, time.Time{})

	for _, intent := range models.Intents {
		spec := Build(selector.Select(intent, "chennai", empty))
		assert.Equal(t, Resolve(intent).Kind, spec.Kind)
		assert.Empty(t, spec.Points)
		assert.Empty(t, spec.Summaries)
	}
}

func TestShapeDoesNotReorderSelection(t *testing.T) {
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	sel := selector.Selection{
		Intent: models.IntentTemperature,
		Readings: []models.Reading{
			{ID: "b", Timestamp: base, Temperature: 20},
			{ID: "a", Timestamp: base.AddDate(0, 0, -1), Temperature: 21},
		},
	}

	spec := Build(sel)

	assert.Equal(t, []string{"2026-01-09", "2026-01-10"}, spec.Labels)
	assert.Equal(t, []float64{21, 20}, spec.Series[0].Data)
	assert.Equal(t, "b", sel.Readings[0].ID)
}
