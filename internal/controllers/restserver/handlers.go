package restserver

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"net/http"

	"github.com/chrissnell/irrigationdash/internal/constants"
	"github.com/chrissnell/irrigationdash/internal/dashboard"
	"github.com/chrissnell/irrigationdash/internal/log"
	"github.com/chrissnell/irrigationdash/internal/render"
	"github.com/chrissnell/irrigationdash/internal/season"
	"github.com/chrissnell/irrigationdash/pkg/responseformat"
	"github.com/gorilla/mux"
)

// SelectionParam is the query parameter carrying the last activated control.
const SelectionParam = "season"

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
	index      *htmltemplate.Template
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) (*Handlers, error) {
	index, err := htmltemplate.New("index.html.tmpl").
		Funcs(htmltemplate.FuncMap{"css": styleAttr}).
		ParseFS(ctrl.FS, "index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing index template: %w", err)
	}

	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
		index:      index,
	}, nil
}

// styleAttr marks a generated style as safe. The declarations come from the
// built-in theme tables, never from request input.
func styleAttr(s dashboard.Style) htmltemplate.CSS {
	return htmltemplate.CSS(s.CSS())
}

func selectionFromRequest(req *http.Request) season.Season {
	return season.ParseSelection(req.URL.Query().Get(SelectionParam))
}

// ServeIndexTemplate renders the dashboard page for the selection in the query string
func (h *Handlers) ServeIndexTemplate(w http.ResponseWriter, req *http.Request) {
	view := h.controller.Dashboard.View(selectionFromRequest(req))

	templateData := struct {
		PageTitle string
		Version   string
		View      dashboard.View
	}{
		PageTitle: h.controller.dashboardConfig.PageTitle,
		Version:   constants.Version,
		View:      view,
	}

	var buf bytes.Buffer
	if err := h.index.Execute(&buf, templateData); err != nil {
		log.Error("error executing index template:", err)
		http.Error(w, "error rendering dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// GetView returns the derived view for a selection as JSON or MessagePack
func (h *Handlers) GetView(w http.ResponseWriter, req *http.Request) {
	view := h.controller.Dashboard.View(selectionFromRequest(req))

	err := h.formatter.WriteResponse(w, req, view, map[string]string{
		"Cache-Control": "max-age=300",
	})
	if err != nil {
		log.Error("error encoding view:", err)
	}
}

// SeasonEntry pairs a table row with its theme
type SeasonEntry struct {
	season.Record
	Theme season.Theme `json:"theme"`
}

// SeasonsResponse describes the static table served by GetSeasons
type SeasonsResponse struct {
	ThemeTable string        `json:"theme_table"`
	ChartKind  string        `json:"chart_kind"`
	Default    season.Theme  `json:"default"`
	Seasons    []SeasonEntry `json:"seasons"`
}

// GetSeasons returns the reference table and the active themes
func (h *Handlers) GetSeasons(w http.ResponseWriter, req *http.Request) {
	themes := h.controller.Dashboard.Reducer().Themes()

	resp := SeasonsResponse{
		ThemeTable: themes.Name,
		ChartKind:  h.controller.Dashboard.ChartKind().String(),
		Default:    themes.Default,
	}
	// Records and Ordered share display order.
	ordered := themes.Ordered()
	for i, r := range season.Records() {
		resp.Seasons = append(resp.Seasons, SeasonEntry{Record: r, Theme: ordered[i]})
	}

	if err := h.formatter.WriteResponse(w, req, resp, nil); err != nil {
		log.Error("error encoding seasons:", err)
	}
}

// ServeChart renders one of the dashboard charts as SVG
func (h *Handlers) ServeChart(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["name"]
	if name != render.HumidityChart && name != render.WaterChart {
		http.NotFound(w, req)
		return
	}

	view := h.controller.Dashboard.View(selectionFromRequest(req))

	var buf bytes.Buffer
	if err := render.Chart(&buf, name, view); err != nil {
		log.Errorf("error rendering %s chart: %v", name, err)
		http.Error(w, "error rendering chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "max-age=300")
	w.Write(buf.Bytes())
}

// Healthz reports that the server is up
func (h *Handlers) Healthz(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, map[string]string{
		"status":  "ok",
		"version": constants.Version,
	}, nil)
}
