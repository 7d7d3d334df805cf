package config

import (
	"fmt"
	"os"
	"strconv"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetServerConfig() (*ServerData, error)
	GetDashboardConfig() (*DashboardData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Server    ServerData    `json:"server"`
	Dashboard DashboardData `json:"dashboard"`
}

// ServerData holds the HTTP listener configuration
type ServerData struct {
	ListenAddr string `json:"listen_addr,omitempty"`
	Port       int    `json:"port,omitempty"`
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
	// ShutdownTimeout is a Go duration string, e.g. "10s"
	ShutdownTimeout string `json:"shutdown_timeout,omitempty"`
}

// DashboardData holds presentation settings
type DashboardData struct {
	PageTitle string `json:"page_title,omitempty"`
	// ChartKind is "donut" or "hbar"
	ChartKind string `json:"chart_kind,omitempty"`
	// ThemeTable is "classic" or "deep"
	ThemeTable string `json:"theme_table,omitempty"`
}

// Defaults used when a setting is absent from every source.
const (
	DefaultListenAddr      = "0.0.0.0"
	DefaultPort            = 8050
	DefaultShutdownTimeout = "10s"
	DefaultPageTitle       = "Dashboard Irrigação do Tomate 🍅"
	DefaultChartKind       = "donut"
	DefaultThemeTable      = "classic"
)

// Environment variables that override file-based settings.
const (
	EnvPort       = "PORT"
	EnvChartKind  = "IRRIGATIONDASH_CHART_KIND"
	EnvThemeTable = "IRRIGATIONDASH_THEME_TABLE"
)

// DefaultConfig returns the configuration used when no source is given.
func DefaultConfig() *ConfigData {
	cfg := &ConfigData{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every unset field with its default.
func (c *ConfigData) ApplyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = DefaultListenAddr
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Dashboard.PageTitle == "" {
		c.Dashboard.PageTitle = DefaultPageTitle
	}
	if c.Dashboard.ChartKind == "" {
		c.Dashboard.ChartKind = DefaultChartKind
	}
	if c.Dashboard.ThemeTable == "" {
		c.Dashboard.ThemeTable = DefaultThemeTable
	}
}

// ApplyEnvironment overrides settings from the process environment. PORT
// follows the convention of most hosting platforms.
func (c *ConfigData) ApplyEnvironment(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid %s %q", EnvPort, v)
		}
		c.Server.Port = port
	}
	if v := getenv(EnvChartKind); v != "" {
		c.Dashboard.ChartKind = v
	}
	if v := getenv(EnvThemeTable); v != "" {
		c.Dashboard.ThemeTable = v
	}
	return nil
}

// DefaultProvider serves DefaultConfig. It backs runs without a config file.
type DefaultProvider struct{}

// NewDefaultProvider creates a provider for the built-in defaults
func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{}
}

func (DefaultProvider) LoadConfig() (*ConfigData, error) {
	return DefaultConfig(), nil
}

func (DefaultProvider) GetServerConfig() (*ServerData, error) {
	return &DefaultConfig().Server, nil
}

func (DefaultProvider) GetDashboardConfig() (*DashboardData, error) {
	return &DefaultConfig().Dashboard, nil
}

func (DefaultProvider) IsReadOnly() bool { return true }

func (DefaultProvider) Close() error { return nil }
