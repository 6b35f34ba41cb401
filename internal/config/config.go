package config

import "github.com/vijay-prabhu/winematch/internal/catalog"

// Catalog sources
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceDatabase = "database"
)

// Config represents the application configuration
type Config struct {
	Catalog  CatalogConfig   `toml:"catalog"`
	Database DatabaseConfig  `toml:"database"`
	Options  catalog.Options `toml:"options"`
	Log      LogConfig       `toml:"log"`
	MCP      MCPConfig       `toml:"mcp"`
}

// CatalogConfig selects where wines are loaded from
type CatalogConfig struct {
	Source string `toml:"source"`
	Path   string `toml:"path"` // TOML catalog file, used when source is "file"
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Source: SourceBuiltin,
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/winematch/winematch.db",
		},
		Options: catalog.DefaultOptions(),
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
