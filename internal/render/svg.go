// Package render rasterizes dashboard charts to SVG for clients that do not
// run the in-browser charting library.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/chrissnell/irrigationdash/internal/dashboard"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart names accepted by Chart.
const (
	HumidityChart = "humidity"
	WaterChart    = "water"
)

const (
	width  = 600
	height = 400
)

// Chart writes the named chart of v as SVG.
func Chart(w io.Writer, name string, v dashboard.View) error {
	switch name {
	case HumidityChart:
		return Humidity(w, v)
	case WaterChart:
		return Water(w, v)
	default:
		return fmt.Errorf("unknown chart %q", name)
	}
}

// Humidity draws soil humidity per season with the y axis pinned to [0,100].
func Humidity(w io.Writer, v dashboard.View) error {
	bars := make([]chart.Value, 0, len(v.Points))
	for _, p := range v.Points {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%s%%)", p.Label, formatNumber(p.SoilHumidity)),
			Value: p.SoilHumidity,
			Style: chart.Style{
				FillColor:   hexColor(p.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1.5,
			},
		})
	}

	graph := chart.BarChart{
		Title:      dashboard.HumidityChartTitle,
		Width:      width,
		Height:     height,
		BarWidth:   60,
		BarSpacing: 40,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: bars,
	}
	return graph.Render(chart.SVG, w)
}

// Water draws water use in the configured chart kind.
func Water(w io.Writer, v dashboard.View) error {
	switch v.ChartKind {
	case dashboard.HorizontalBarWithMeanLine:
		return waterBars(w, v)
	default:
		return waterDonut(w, v)
	}
}

func waterDonut(w io.Writer, v dashboard.View) error {
	values := make([]chart.Value, 0, len(v.Points))
	for _, p := range v.Points {
		values = append(values, chart.Value{
			Label: p.Label,
			Value: p.WaterUse,
			Style: chart.Style{
				FillColor:   hexColor(p.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1.5,
			},
		})
	}

	graph := chart.DonutChart{
		Title:  fmt.Sprintf("%s: %s", dashboard.WaterShareChartTitle, dashboard.FormatWater(v.State.WaterTotal)),
		Width:  width,
		Height: height,
		Values: values,
	}
	return graph.Render(chart.SVG, w)
}

// waterBars has no reference line primitive in the SVG renderer, so the
// unfiltered mean travels in the title instead.
func waterBars(w io.Writer, v dashboard.View) error {
	bars := make([]chart.StackedBar, 0, len(v.Points))
	for _, p := range v.Points {
		bars = append(bars, chart.StackedBar{
			Name: p.Label,
			Values: []chart.Value{{
				Label: dashboard.FormatWater(p.WaterUse),
				Value: p.WaterUse,
				Style: chart.Style{
					FillColor:   hexColor(p.Color),
					StrokeColor: drawing.ColorWhite,
					StrokeWidth: 1.5,
				},
			}},
		})
	}

	graph := chart.StackedBarChart{
		Title:        fmt.Sprintf("%s (média geral %s)", dashboard.WaterBarChartTitle, dashboard.FormatWater(dashboard.UnfilteredWaterMean())),
		Width:        width,
		Height:       height,
		IsHorizontal: true,
		Background:   chart.Style{Padding: chart.Box{Top: 40}},
		Bars:         bars,
	}
	return graph.Render(chart.SVG, w)
}

// hexColor accepts #RRGGBB, as stored in the theme tables.
func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

func formatNumber(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", f), "0"), ".")
}
