package dashboard

import (
	"github.com/chrissnell/irrigationdash/internal/season"
)

// View is everything the page renders after one selection event.
type View struct {
	State         ViewState   `json:"state"`
	ChartKind     ChartKind   `json:"chart_kind"`
	Points        []Point     `json:"points"`
	HumidityChart Figure      `json:"humidity_chart"`
	WaterChart    Figure      `json:"water_chart"`
	HumidityKPI   string      `json:"humidity_kpi"`
	WaterKPI      string      `json:"water_kpi"`
	Styles        StyleBundle `json:"styles"`
	Controls      []Control   `json:"controls"`
}

// Dashboard binds a reducer to the configured water chart kind.
type Dashboard struct {
	reducer *Reducer
	kind    ChartKind
}

// New creates a dashboard using themes for colors and kind for the water chart.
func New(themes season.ThemeTable, kind ChartKind) *Dashboard {
	return &Dashboard{
		reducer: NewReducer(themes),
		kind:    kind,
	}
}

// Reducer exposes the underlying reducer.
func (d *Dashboard) Reducer() *Reducer {
	return d.reducer
}

// ChartKind returns the configured water chart kind.
func (d *Dashboard) ChartKind() ChartKind {
	return d.kind
}

// View reduces sel and derives the full presentation for it.
func (d *Dashboard) View(sel season.Season) View {
	return BuildView(d.reducer.Reduce(sel), d.reducer.Themes(), d.kind)
}

// BuildView derives figures, KPIs and styles from a view state. It is pure:
// nothing is cached between calls.
func BuildView(vs ViewState, themes season.ThemeTable, kind ChartKind) View {
	points := make([]Point, len(vs.Records))
	for i, r := range vs.Records {
		points[i] = Point{
			Label:        r.Season.Name(),
			Color:        themes.For(r.Season).PrimaryColor,
			WaterUse:     r.WaterUse,
			SoilHumidity: r.SoilHumidity,
		}
	}

	styles := StylesFor(vs.Theme, vs.Filtered())

	v := View{
		State:         vs,
		ChartKind:     kind,
		Points:        points,
		HumidityChart: humidityFigure(points),
		HumidityKPI:   FormatHumidity(vs.HumidityAverage),
		WaterKPI:      FormatWater(vs.WaterAverage),
		Styles:        styles,
		Controls:      Controls(themes, vs.Selection),
	}

	switch kind {
	case HorizontalBarWithMeanLine:
		v.WaterChart = waterBarFigure(points, UnfilteredWaterMean(), styles.Accent)
	default:
		v.WaterChart = waterDonutFigure(points, vs.WaterTotal, styles.Accent)
	}

	return v
}
