package config

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"
)

// schema stores each configuration section as key/value rows.
const schema = `
CREATE TABLE IF NOT EXISTS settings (
	section TEXT NOT NULL,
	key     TEXT NOT NULL,
	value   TEXT NOT NULL,
	PRIMARY KEY (section, key)
)`

const (
	sectionServer    = "server"
	sectionDashboard = "dashboard"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create settings table: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	server, err := s.readServer()
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	config.Server = *server

	dashboard, err := s.readDashboard()
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard config: %w", err)
	}
	config.Dashboard = *dashboard

	config.ApplyDefaults()
	return config, nil
}

// GetServerConfig returns the server section
func (s *SQLiteProvider) GetServerConfig() (*ServerData, error) {
	config, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &config.Server, nil
}

// GetDashboardConfig returns the dashboard section
func (s *SQLiteProvider) GetDashboardConfig() (*DashboardData, error) {
	config, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &config.Dashboard, nil
}

// IsReadOnly returns false; SaveConfig can write to the database
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}

// SaveConfig replaces every stored setting with the values in cfg.
func (s *SQLiteProvider) SaveConfig(cfg *ConfigData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM settings`); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}

	rows := []struct {
		section, key, value string
	}{
		{sectionServer, "listen_addr", cfg.Server.ListenAddr},
		{sectionServer, "port", portString(cfg.Server.Port)},
		{sectionServer, "cert", cfg.Server.Cert},
		{sectionServer, "key", cfg.Server.Key},
		{sectionServer, "shutdown_timeout", cfg.Server.ShutdownTimeout},
		{sectionDashboard, "page_title", cfg.Dashboard.PageTitle},
		{sectionDashboard, "chart_kind", cfg.Dashboard.ChartKind},
		{sectionDashboard, "theme_table", cfg.Dashboard.ThemeTable},
	}

	for _, r := range rows {
		if r.value == "" {
			continue
		}
		if _, err := tx.Exec(`INSERT INTO settings (section, key, value) VALUES (?, ?, ?)`, r.section, r.key, r.value); err != nil {
			return fmt.Errorf("failed to store %s.%s: %w", r.section, r.key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteProvider) readSection(section string) (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings WHERE section = ?`, section)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s settings: %w", section, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan %s setting: %w", section, err)
		}
		values[key] = value
	}
	return values, rows.Err()
}

func (s *SQLiteProvider) readServer() (*ServerData, error) {
	values, err := s.readSection(sectionServer)
	if err != nil {
		return nil, err
	}

	server := &ServerData{
		ListenAddr:      values["listen_addr"],
		Cert:            values["cert"],
		Key:             values["key"],
		ShutdownTimeout: values["shutdown_timeout"],
	}
	if p := values["port"]; p != "" {
		server.Port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid server port %q: %w", p, err)
		}
	}
	return server, nil
}

func (s *SQLiteProvider) readDashboard() (*DashboardData, error) {
	values, err := s.readSection(sectionDashboard)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		PageTitle:  values["page_title"],
		ChartKind:  values["chart_kind"],
		ThemeTable: values["theme_table"],
	}, nil
}

func portString(p int) string {
	if p == 0 {
		return ""
	}
	return strconv.Itoa(p)
}
