package restserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/chrissnell/irrigationdash/internal/dashboard"
	"github.com/chrissnell/irrigationdash/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestController(t *testing.T, mutate func(*config.ConfigData)) *Controller {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Server.ListenAddr = "127.0.0.1"
	if mutate != nil {
		mutate(cfg)
	}

	ctrl, err := NewController(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	return ctrl
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNewControllerRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.ConfigData)
	}{
		{name: "chart kind", mutate: func(c *config.ConfigData) { c.Dashboard.ChartKind = "radar" }},
		{name: "theme table", mutate: func(c *config.ConfigData) { c.Dashboard.ThemeTable = "neon" }},
		{name: "shutdown timeout", mutate: func(c *config.ConfigData) { c.Server.ShutdownTimeout = "soon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			_, err := NewController(cfg, zap.NewNop().Sugar())
			assert.Error(t, err)
		})
	}
}

func TestServeIndex(t *testing.T) {
	h := newTestController(t, nil).Handler()

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Dashboard Irrigação do Tomate 🍅</title>")
	assert.Contains(t, body, dashboard.DefaultTitle)
	assert.Contains(t, body, "4,925 m³")
	assert.Contains(t, body, "Limpar Filtros")
	assert.NotContains(t, body, "ZgotmplZ")
}

func TestServeIndexWithSelection(t *testing.T) {
	h := newTestController(t, nil).Handler()

	rec := get(t, h, "/?season="+url.QueryEscape("btn-Verão"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "☀️ Verão — Maior uso de água devido ao calor")
	assert.Contains(t, body, "78.0%")
	assert.Contains(t, body, "7,500 m³")
	assert.Contains(t, body, "background-color: #FFA72620;")
}

func TestGetView(t *testing.T) {
	h := newTestController(t, nil).Handler()

	rec := get(t, h, "/api/view?season=Inverno")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var view dashboard.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.State.Records, 1)
	assert.Equal(t, 2500.0, view.State.Records[0].WaterUse)
	assert.Equal(t, "60.0%", view.HumidityKPI)
	assert.Equal(t, dashboard.DonutShare, view.ChartKind)
}

func TestGetViewUnknownSelection(t *testing.T) {
	h := newTestController(t, nil).Handler()

	var view dashboard.View
	rec := get(t, h, "/api/view?season=btn-Monção")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	assert.Len(t, view.State.Records, 4)
	assert.Equal(t, dashboard.DefaultTitle, view.State.Title)
}

func TestGetViewMsgPack(t *testing.T) {
	h := newTestController(t, func(c *config.ConfigData) { c.Dashboard.ChartKind = "hbar" }).Handler()

	rec := get(t, h, "/api/view?format=msgpack")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-msgpack", rec.Header().Get("Content-Type"))

	var decoded map[string]any
	require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "hbar", decoded["chart_kind"])
	assert.Equal(t, "4,925 m³", decoded["water_kpi"])

	rec = get(t, h, "/api/view?format=msgpack&season=Ver%C3%A3o")
	require.Equal(t, http.StatusOK, rec.Code)
	decoded = nil
	require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "Verão", decoded["state"].(map[string]any)["selection"])
	assert.Contains(t, decoded["styles"].(map[string]any)["page"], "background-color: #FFF3E0;")
}

func TestGetSeasons(t *testing.T) {
	h := newTestController(t, func(c *config.ConfigData) { c.Dashboard.ThemeTable = "deep" }).Handler()

	rec := get(t, h, "/api/seasons")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SeasonsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "deep", resp.ThemeTable)
	assert.Equal(t, "#1565C0", resp.Default.PrimaryColor)
	require.Len(t, resp.Seasons, 4)
	assert.Equal(t, 7500.0, resp.Seasons[1].WaterUse)
	assert.Equal(t, "☀️", resp.Seasons[1].Theme.Icon)
	for _, e := range resp.Seasons {
		assert.Equal(t, e.Season.Name(), e.Theme.Key)
	}
}

func TestServeChart(t *testing.T) {
	h := newTestController(t, nil).Handler()

	for _, target := range []string{"/chart/humidity.svg", "/chart/water.svg", "/chart/humidity.svg?season=Outono"} {
		rec := get(t, h, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
		assert.True(t, strings.Contains(rec.Body.String(), "<svg"), target)
	}

	assert.Equal(t, http.StatusNotFound, get(t, h, "/chart/rainfall.svg").Code)
}

func TestStaticAssets(t *testing.T) {
	h := newTestController(t, nil).Handler()

	rec := get(t, h, "/static/js/dashboard.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IRRIGATIONDASH_VIEW")

	assert.Equal(t, http.StatusOK, get(t, h, "/static/css/dashboard.css").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/static/missing.js").Code)
}

func TestHealthz(t *testing.T) {
	h := newTestController(t, nil).Handler()

	rec := get(t, h, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRequestIDPropagated(t *testing.T) {
	h := newTestController(t, nil).Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ctrl := newTestController(t, func(c *config.ConfigData) { c.Server.ShutdownTimeout = "2s" })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ctrl.Serve(ctx, ln) }()

	client := &http.Client{Timeout: 5 * time.Second, Transport: &http.Transport{DisableKeepAlives: true}}
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
