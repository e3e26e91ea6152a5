package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
	MCP    MCPConfig    `yaml:"mcp"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig selects the entity store. The sqlite DSN defaults to an
// in-memory database; state never outlives the process unless a file DSN is set.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Seed   bool   `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MCPConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Store: StoreConfig{
			Driver: DriverMemory,
			DSN:    ":memory:",
			Seed:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		MCP: MCPConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("WORKFORCE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("WORKFORCE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("WORKFORCE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WORKFORCE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if driver := os.Getenv("WORKFORCE_STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if dsn := os.Getenv("WORKFORCE_STORE_DSN"); dsn != "" {
		cfg.Store.DSN = dsn
	}
	if seedStr := os.Getenv("WORKFORCE_STORE_SEED"); seedStr != "" {
		seed, err := strconv.ParseBool(seedStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WORKFORCE_STORE_SEED: %w", err)
		}
		cfg.Store.Seed = seed
	}
	if level := os.Getenv("WORKFORCE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if origins := os.Getenv("WORKFORCE_CORS_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = splitList(origins)
	}
	if mcpStr := os.Getenv("WORKFORCE_MCP_ENABLED"); mcpStr != "" {
		enabled, err := strconv.ParseBool(mcpStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WORKFORCE_MCP_ENABLED: %w", err)
		}
		cfg.MCP.Enabled = enabled
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail at startup.
func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Store.DSN == "" {
			return fmt.Errorf("store dsn is required for driver %q", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
