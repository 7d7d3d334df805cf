// Package dashboard turns a season selection into everything the page needs
// to paint one screen: the filtered records, their averages, the active theme,
// chart figures, KPI strings and styles.
package dashboard

import (
	"fmt"

	"github.com/chrissnell/irrigationdash/internal/season"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultTitle is shown when no season filter is active.
const DefaultTitle = "💧 Uso da Irrigação e Umidade do Solo no Plantio de Tomate"

// ViewState is the derived state for one selection event.
type ViewState struct {
	Selection       season.Season   `json:"selection"`
	Records         []season.Record `json:"records"`
	HumidityAverage float64         `json:"humidity_average"`
	WaterAverage    float64         `json:"water_average"`
	WaterTotal      float64         `json:"water_total"`
	Theme           season.Theme    `json:"theme"`
	Title           string          `json:"title"`
}

// Filtered reports whether the state shows a single season.
func (vs ViewState) Filtered() bool {
	return vs.Selection.Valid()
}

// Reducer maps selections to view states using a fixed theme table. It holds
// no mutable state and is safe for concurrent use.
type Reducer struct {
	themes season.ThemeTable
}

// NewReducer returns a reducer that draws its colors from themes.
func NewReducer(themes season.ThemeTable) *Reducer {
	return &Reducer{themes: themes}
}

// Themes returns the theme table the reducer was built with.
func (r *Reducer) Themes() season.ThemeTable {
	return r.themes
}

// Reduce computes the view state for the most recently activated control.
// Every input yields a state; anything that is not one of the four seasons
// produces the unfiltered view.
func (r *Reducer) Reduce(sel season.Season) ViewState {
	switch sel {
	case season.Spring, season.Summer, season.Autumn, season.Winter:
		rec, _ := season.RecordFor(sel)
		th := r.themes.For(sel)
		return summarize(sel, []season.Record{rec}, th, fmt.Sprintf("%s %s — %s", th.Icon, sel.Name(), th.Caption))
	default:
		return summarize(season.None, season.Records(), r.themes.Default, DefaultTitle)
	}
}

func summarize(sel season.Season, rs []season.Record, th season.Theme, title string) ViewState {
	water := season.WaterUseValues(rs)
	humidity := season.SoilHumidityValues(rs)

	return ViewState{
		Selection:       sel,
		Records:         rs,
		HumidityAverage: stat.Mean(humidity, nil),
		WaterAverage:    stat.Mean(water, nil),
		WaterTotal:      floats.Sum(water),
		Theme:           th,
		Title:           title,
	}
}

// UnfilteredWaterMean is the mean water use across the whole table. The
// horizontal water chart draws its reference line here regardless of the
// active filter.
func UnfilteredWaterMean() float64 {
	return stat.Mean(season.WaterUseValues(season.Records()), nil)
}
