package dashboard

import (
	"fmt"
	"strconv"
)

// Figure is a chart description in the shape plotly.js accepts for
// Plotly.react(el, figure.data, figure.layout).
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one plotly data series.
type Trace struct {
	Type         string    `json:"type"`
	Name         string    `json:"name,omitempty"`
	X            []any     `json:"x,omitempty"`
	Y            []any     `json:"y,omitempty"`
	Labels       []string  `json:"labels,omitempty"`
	Values       []float64 `json:"values,omitempty"`
	Orientation  string    `json:"orientation,omitempty"`
	Text         []string  `json:"text,omitempty"`
	TextTemplate string    `json:"texttemplate,omitempty"`
	TextPosition string    `json:"textposition,omitempty"`
	TextInfo     string    `json:"textinfo,omitempty"`
	HoverInfo    string    `json:"hoverinfo,omitempty"`
	Hole         float64   `json:"hole,omitempty"`
	Sort         *bool     `json:"sort,omitempty"`
	ShowLegend   *bool     `json:"showlegend,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
}

// Marker styles the bars or slices of a trace.
type Marker struct {
	// Color is per-bar, Colors is per-slice.
	Color  []string `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Line   *Line    `json:"line,omitempty"`
}

// Line is a stroke: marker outlines and reference lines.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// Layout holds the non-data parts of a figure.
type Layout struct {
	Title        Title        `json:"title"`
	ShowLegend   bool         `json:"showlegend"`
	PlotBGColor  string       `json:"plot_bgcolor,omitempty"`
	PaperBGColor string       `json:"paper_bgcolor,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	Annotations  []Annotation `json:"annotations,omitempty"`
	Shapes       []Shape      `json:"shapes,omitempty"`
	Transition   *Transition  `json:"transition,omitempty"`
	Margin       Margin       `json:"margin"`
}

// Title is a figure title; X positions it in paper coordinates.
type Title struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
}

// Axis configures one cartesian axis.
type Axis struct {
	Title *AxisTitle `json:"title,omitempty"`
	Range []float64  `json:"range,omitempty"`
}

// AxisTitle labels an axis.
type AxisTitle struct {
	Text string `json:"text"`
}

// Font sets annotation text color and size.
type Font struct {
	Color string  `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

// Annotation places free text on the figure.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	Font      *Font   `json:"font,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	Align     string  `json:"align,omitempty"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
}

// Shape is a drawn primitive such as a reference line.
type Shape struct {
	Type string  `json:"type"`
	XRef string  `json:"xref"`
	YRef string  `json:"yref"`
	X0   float64 `json:"x0"`
	X1   float64 `json:"x1"`
	Y0   float64 `json:"y0"`
	Y1   float64 `json:"y1"`
	Line Line    `json:"line"`
}

// Transition animates changes between renders.
type Transition struct {
	Duration int    `json:"duration"`
	Easing   string `json:"easing"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Chart titles.
const (
	HumidityChartTitle   = "Umidade do Solo (%) Média"
	WaterShareChartTitle = "Distribuição do Uso de Água (m³)"
	WaterBarChartTitle   = "Uso de Água por Estação (m³)"
)

const transparent = "rgba(0,0,0,0)"

func boolPtr(b bool) *bool { return &b }

func baseLayout(title string) Layout {
	return Layout{
		Title:        Title{Text: title, X: 0.5},
		PlotBGColor:  transparent,
		PaperBGColor: transparent,
		Transition:   &Transition{Duration: 800, Easing: "cubic-in-out"},
		Margin:       Margin{L: 20, R: 20, T: 40, B: 20},
	}
}

// Point is one plotted season with its color.
type Point struct {
	Label        string  `json:"label"`
	Color        string  `json:"color"`
	WaterUse     float64 `json:"water_use"`
	SoilHumidity float64 `json:"soil_humidity"`
}

func humidityFigure(points []Point) Figure {
	x := make([]any, len(points))
	y := make([]any, len(points))
	text := make([]string, len(points))
	colors := make([]string, len(points))
	for i, p := range points {
		x[i] = p.Label
		y[i] = p.SoilHumidity
		text[i] = strconv.FormatFloat(p.SoilHumidity, 'f', -1, 64)
		colors[i] = p.Color
	}

	layout := baseLayout(HumidityChartTitle)
	layout.XAxis = &Axis{Title: &AxisTitle{Text: "Estação"}}
	layout.YAxis = &Axis{Title: &AxisTitle{Text: "Umidade do Solo (%)"}, Range: []float64{0, 100}}

	return Figure{
		Data: []Trace{{
			Type:         "bar",
			X:            x,
			Y:            y,
			Text:         text,
			TextTemplate: "%{text}%",
			TextPosition: "outside",
			Marker: &Marker{
				Color: colors,
				Line:  &Line{Color: "white", Width: 1.5},
			},
		}},
		Layout: layout,
	}
}

func waterDonutFigure(points []Point, total float64, accent string) Figure {
	labels := make([]string, len(points))
	values := make([]float64, len(points))
	colors := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
		values[i] = p.WaterUse
		colors[i] = p.Color
	}

	layout := baseLayout(WaterShareChartTitle)
	layout.Annotations = []Annotation{{
		Text:      fmt.Sprintf("<span style='font-size:30px; font-weight:bold; color:%s;'>%s</span>", accent, FormatWater(total)),
		X:         0.5,
		Y:         0.5,
		Font:      &Font{Color: "#000000"},
		ShowArrow: false,
		Align:     "center",
		XAnchor:   "center",
		YAnchor:   "middle",
	}}

	return Figure{
		Data: []Trace{{
			Type:       "pie",
			Labels:     labels,
			Values:     values,
			Hole:       0.65,
			Sort:       boolPtr(false),
			TextInfo:   "percent+label",
			HoverInfo:  "label+value+percent",
			ShowLegend: boolPtr(false),
			Marker:     &Marker{Colors: colors},
		}},
		Layout: layout,
	}
}

func waterBarFigure(points []Point, mean float64, accent string) Figure {
	x := make([]any, len(points))
	y := make([]any, len(points))
	text := make([]string, len(points))
	colors := make([]string, len(points))
	for i, p := range points {
		x[i] = p.WaterUse
		y[i] = p.Label
		text[i] = FormatWater(p.WaterUse)
		colors[i] = p.Color
	}

	layout := baseLayout(WaterBarChartTitle)
	layout.XAxis = &Axis{Title: &AxisTitle{Text: "Volume de Água (m³)"}}
	layout.YAxis = &Axis{Title: &AxisTitle{Text: "Estação"}}
	layout.Shapes = []Shape{{
		Type: "line",
		XRef: "x",
		YRef: "paper",
		X0:   mean,
		X1:   mean,
		Y0:   0,
		Y1:   1,
		Line: Line{Color: accent, Width: 2, Dash: "dash"},
	}}
	layout.Annotations = []Annotation{{
		Text:      "Média geral: " + FormatWater(mean),
		X:         mean,
		Y:         1,
		XRef:      "x",
		YRef:      "paper",
		Font:      &Font{Color: accent},
		ShowArrow: false,
		XAnchor:   "left",
		YAnchor:   "bottom",
	}}

	return Figure{
		Data: []Trace{{
			Type:         "bar",
			Orientation:  "h",
			X:            x,
			Y:            y,
			Text:         text,
			TextPosition: "auto",
			Marker: &Marker{
				Color: colors,
				Line:  &Line{Color: "white", Width: 1.5},
			},
		}},
		Layout: layout,
	}
}
