package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// ServerYAML mirrors ServerData with YAML tags
type ServerYAML struct {
	ListenAddr      string `yaml:"listen_addr,omitempty"`
	Port            int    `yaml:"port,omitempty"`
	Cert            string `yaml:"cert,omitempty"`
	Key             string `yaml:"key,omitempty"`
	ShutdownTimeout string `yaml:"shutdown_timeout,omitempty"`
}

// DashboardYAML mirrors DashboardData with YAML tags
type DashboardYAML struct {
	PageTitle  string `yaml:"page_title,omitempty"`
	ChartKind  string `yaml:"chart_kind,omitempty"`
	ThemeTable string `yaml:"theme_table,omitempty"`
}

type configYAML struct {
	Server    ServerYAML    `yaml:"server,omitempty"`
	Dashboard DashboardYAML `yaml:"dashboard,omitempty"`
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var yamlConfig configYAML
	if err := yaml.Unmarshal(cfgFile, &yamlConfig); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", y.filename, err)
	}

	config := &ConfigData{
		Server: ServerData{
			ListenAddr:      yamlConfig.Server.ListenAddr,
			Port:            yamlConfig.Server.Port,
			Cert:            yamlConfig.Server.Cert,
			Key:             yamlConfig.Server.Key,
			ShutdownTimeout: yamlConfig.Server.ShutdownTimeout,
		},
		Dashboard: DashboardData{
			PageTitle:  yamlConfig.Dashboard.PageTitle,
			ChartKind:  yamlConfig.Dashboard.ChartKind,
			ThemeTable: yamlConfig.Dashboard.ThemeTable,
		},
	}
	config.ApplyDefaults()

	return config, nil
}

// GetServerConfig returns the server section
func (y *YAMLProvider) GetServerConfig() (*ServerData, error) {
	config, err := y.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &config.Server, nil
}

// GetDashboardConfig returns the dashboard section
func (y *YAMLProvider) GetDashboardConfig() (*DashboardData, error) {
	config, err := y.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &config.Dashboard, nil
}

// IsReadOnly returns true since YAML files are read-only in this implementation
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// MarshalYAML renders cfg in the layout LoadConfig reads.
func MarshalYAML(cfg *ConfigData) ([]byte, error) {
	out := configYAML{
		Server: ServerYAML{
			ListenAddr:      cfg.Server.ListenAddr,
			Port:            cfg.Server.Port,
			Cert:            cfg.Server.Cert,
			Key:             cfg.Server.Key,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		Dashboard: DashboardYAML{
			PageTitle:  cfg.Dashboard.PageTitle,
			ChartKind:  cfg.Dashboard.ChartKind,
			ThemeTable: cfg.Dashboard.ThemeTable,
		},
	}
	return yaml.Marshal(out)
}
