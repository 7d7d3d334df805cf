package restserver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/chrissnell/irrigationdash/internal/dashboard"
	"github.com/chrissnell/irrigationdash/internal/log"
	"github.com/chrissnell/irrigationdash/internal/season"
	"github.com/chrissnell/irrigationdash/pkg/config"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Controller serves the dashboard page, its JSON API and chart images.
type Controller struct {
	serverConfig    config.ServerData
	dashboardConfig config.DashboardData
	Server          http.Server
	FS              fs.FS
	Dashboard       *dashboard.Dashboard
	shutdownTimeout time.Duration
	logger          *zap.SugaredLogger
	handlers        *Handlers
}

// NewController creates a new REST server controller
func NewController(cfg *config.ConfigData, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		serverConfig:    cfg.Server,
		dashboardConfig: cfg.Dashboard,
		logger:          logger,
	}

	themes, err := season.ThemeTableByName(cfg.Dashboard.ThemeTable)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard configuration: %w", err)
	}

	kind, err := dashboard.ParseChartKind(cfg.Dashboard.ChartKind)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard configuration: %w", err)
	}

	ctrl.Dashboard = dashboard.New(themes, kind)

	// If a listen address was not provided, listen on all interfaces
	if ctrl.serverConfig.ListenAddr == "" {
		logger.Info("server.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		ctrl.serverConfig.ListenAddr = config.DefaultListenAddr
	}

	if ctrl.serverConfig.Port == 0 {
		logger.Infof("server.port not provided; defaulting to %d", config.DefaultPort)
		ctrl.serverConfig.Port = config.DefaultPort
	}

	ctrl.shutdownTimeout = 10 * time.Second
	if ctrl.serverConfig.ShutdownTimeout != "" {
		ctrl.shutdownTimeout, err = time.ParseDuration(ctrl.serverConfig.ShutdownTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid server.shutdown_timeout %q: %w", ctrl.serverConfig.ShutdownTimeout, err)
		}
	}

	ctrl.FS = GetAssets()
	ctrl.handlers, err = NewHandlers(ctrl)
	if err != nil {
		return nil, err
	}

	ctrl.Server.Addr = net.JoinHostPort(ctrl.serverConfig.ListenAddr, fmt.Sprint(ctrl.serverConfig.Port))
	ctrl.Server.Handler = ctrl.Handler()
	ctrl.Server.ReadHeaderTimeout = 10 * time.Second

	logger.Infow("dashboard configured",
		"theme_table", themes.Name,
		"chart_kind", kind.String(),
		"addr", ctrl.Server.Addr,
	)

	return ctrl, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down
// gracefully. It returns nil after a clean shutdown.
func (c *Controller) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", c.Server.Addr)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", c.Server.Addr, err)
	}
	return c.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (c *Controller) Serve(ctx context.Context, ln net.Listener) error {
	log.Infof("Starting REST server on %s...", ln.Addr())

	errc := make(chan error, 1)
	go func() {
		var err error
		if c.serverConfig.Cert != "" && c.serverConfig.Key != "" {
			err = c.Server.ServeTLS(ln, c.serverConfig.Cert, c.serverConfig.Key)
		} else {
			err = c.Server.Serve(ln)
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errc <- err
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("REST server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down the REST server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.shutdownTimeout)
	defer cancel()

	if err := c.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("REST server shutdown: %w", err)
	}
	return <-errc
}

// Handler returns the fully wrapped HTTP handler.
func (c *Controller) Handler() http.Handler {
	router := c.setupRouter()

	var h http.Handler = router
	h = handlers.CompressHandler(h)
	h = requestLogger(h)
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{c.logger}),
		handlers.PrintRecoveryStack(true),
	)(h)
	return h
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	// API endpoints
	router.HandleFunc("/api/view", c.handlers.GetView).Methods(http.MethodGet)
	router.HandleFunc("/api/seasons", c.handlers.GetSeasons).Methods(http.MethodGet)
	router.HandleFunc("/chart/{name}.svg", c.handlers.ServeChart).Methods(http.MethodGet)
	router.HandleFunc("/healthz", c.handlers.Healthz).Methods(http.MethodGet)

	// Template endpoints
	router.HandleFunc("/", c.handlers.ServeIndexTemplate).Methods(http.MethodGet)

	// Static file serving
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(c.FS))))

	return router
}
