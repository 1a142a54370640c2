package models

// ChartKind tells the renderer which view to draw
type ChartKind string

const (
	ChartLine        ChartKind = "line"
	ChartBar         ChartKind = "bar"
	ChartScatter     ChartKind = "scatter"
	ChartSummaryList ChartKind = "summary-list"
	ChartInfo        ChartKind = "info" // Informational view, no data-driven chart
)

// ChartSpec is the render-ready descriptor handed to the presentation layer
type ChartSpec struct {
	Kind       ChartKind         `json:"kind"`
	Title      string            `json:"title"`
	XAxis      string            `json:"xAxis,omitempty"`
	YAxis      string            `json:"yAxis,omitempty"`
	Labels     []string          `json:"labels,omitempty"` // Category labels for line/bar
	Series     []ChartSeries     `json:"series,omitempty"`
	Points     []ScatterPoint    `json:"points,omitempty"`
	Legend     []LegendEntry     `json:"legend,omitempty"`
	Summaries  []LocationSummary `json:"summaries,omitempty"`
	Highlights []Highlight       `json:"highlights,omitempty"`
	Message    string            `json:"message,omitempty"`
}

// HasData reports whether the spec carries anything to draw
func (c ChartSpec) HasData() bool {
	for _, s := range c.Series {
		if len(s.Data) > 0 {
			return true
		}
	}
	return len(c.Points) > 0 || len(c.Summaries) > 0
}

// ChartSeries is one named series aligned with ChartSpec.Labels
type ChartSeries struct {
	Name  string    `json:"name"`
	Data  []float64 `json:"data"`
	Color string    `json:"color,omitempty"`
}

// ScatterPoint is one colour-coded point of a scatter chart
type ScatterPoint struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Low   bool    `json:"low"`
	Color string  `json:"color"`
}

// LegendEntry maps a colour to its meaning
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// LocationSummary aggregates all readings of one location
type LocationSummary struct {
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`  // Mean latitude
	Longitude float64 `json:"longitude"` // Mean longitude
	Count     int     `json:"count"`
	SpreadKm  float64 `json:"spreadKm"` // Farthest reading from the mean position
}

// Highlight is one card of the informational view
type Highlight struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
