// Package render draws chart specs to PNG images for clients that cannot
// render them themselves.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jengzang/ocean-query-backend/internal/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	// ErrNotRenderable is returned for views that are not charts
	ErrNotRenderable = errors.New("chart kind has no image rendering")

	// ErrNoData is returned when a chart has nothing to draw
	ErrNoData = errors.New("chart has no data")
)

// Size bounds accepted by PNG
const (
	MinSize = 200
	MaxSize = 2000
)

// PNG renders spec as a PNG image of the given size
func PNG(spec models.ChartSpec, width, height int, w io.Writer) error {
	width = clamp(width, MinSize, MaxSize)
	height = clamp(height, MinSize, MaxSize)

	switch spec.Kind {
	case models.ChartLine:
		return renderLine(spec, width, height, w)
	case models.ChartBar:
		return renderBar(spec, width, height, w)
	case models.ChartScatter:
		return renderScatter(spec, width, height, w)
	default:
		return fmt.Errorf("%w: %s", ErrNotRenderable, spec.Kind)
	}
}

func renderLine(spec models.ChartSpec, width, height int, w io.Writer) error {
	if len(spec.Labels) == 0 || len(spec.Series) == 0 {
		return ErrNoData
	}

	// go-chart derives the x range from the outermost ticks, so unlabeled
	// ticks half a step outside the data keep a single point drawable
	xs := make([]float64, len(spec.Labels))
	ticks := make([]chart.Tick, 0, len(spec.Labels)+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i, label := range spec.Labels {
		xs[i] = float64(i)
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: label})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(xs)) - 0.5})

	var series []chart.Series
	var all []float64
	for _, s := range spec.Series {
		n := min(len(s.Data), len(xs))
		if n == 0 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs[:n],
			YValues: s.Data[:n],
			Style: chart.Style{
				StrokeColor: colorOrDefault(s.Color, chart.ColorBlue),
				StrokeWidth: 2,
				DotWidth:    3,
				DotColor:    colorOrDefault(s.Color, chart.ColorBlue),
			},
		})
		all = append(all, s.Data[:n]...)
	}
	if len(series) == 0 {
		return ErrNoData
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  spec.XAxis,
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(xs)) - 0.5},
		},
		YAxis:  chart.YAxis{Name: spec.YAxis, Range: paddedRange(all)},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render line chart: %w", err)
	}
	return nil
}

func renderBar(spec models.ChartSpec, width, height int, w io.Writer) error {
	if len(spec.Series) == 0 || len(spec.Series[0].Data) == 0 {
		return ErrNoData
	}

	s := spec.Series[0]
	color := colorOrDefault(s.Color, chart.ColorBlue)

	bars := make([]chart.Value, 0, len(s.Data))
	for i, v := range s.Data {
		label := ""
		if i < len(spec.Labels) {
			label = spec.Labels[i]
		}
		bars = append(bars, chart.Value{
			Label: label,
			Value: v,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	bc := chart.BarChart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		BarWidth:   max(10, width/(2*len(bars)+1)),
		BarSpacing: max(4, width/(2*len(bars)+1)),
		YAxis:      chart.YAxis{Name: spec.YAxis, Range: paddedRange(s.Data)},
		Bars:       bars,
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render bar chart: %w", err)
	}
	return nil
}

func renderScatter(spec models.ChartSpec, width, height int, w io.Writer) error {
	if len(spec.Points) == 0 {
		return ErrNoData
	}

	// One series per colour so the legend explains the classification
	type group struct {
		xs, ys []float64
	}
	groups := make(map[string]*group)
	var order []string
	var all, allX []float64
	for _, p := range spec.Points {
		g, ok := groups[p.Color]
		if !ok {
			g = &group{}
			groups[p.Color] = g
			order = append(order, p.Color)
		}
		g.xs = append(g.xs, p.X)
		g.ys = append(g.ys, p.Y)
		all = append(all, p.Y)
		allX = append(allX, p.X)
	}

	series := make([]chart.Series, 0, len(order))
	for _, c := range order {
		g := groups[c]
		series = append(series, chart.ContinuousSeries{
			Name:    legendLabel(spec.Legend, c),
			XValues: g.xs,
			YValues: g.ys,
			Style:   pointStyle(colorOrDefault(c, chart.ColorBlue)),
		})
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: spec.XAxis, Range: paddedRange(allX)},
		YAxis:      chart.YAxis{Name: spec.YAxis, Range: paddedRange(all)},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render scatter chart: %w", err)
	}
	return nil
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    4,
		DotColor:    col,
	}
}

// paddedRange widens the value span by 5% on each side, and by 1 when
// every value is equal, so single-valued series still have a drawable axis
func paddedRange(values []float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func legendLabel(legend []models.LegendEntry, color string) string {
	for _, e := range legend {
		if strings.EqualFold(e.Color, color) {
			return e.Label
		}
	}
	return color
}

func colorOrDefault(hex string, fallback drawing.Color) drawing.Color {
	if hex == "" {
		return fallback
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
