package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration loaded from YAML and the environment.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	AI       AIConfig       `yaml:"ai"`
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Addr       string `yaml:"addr"`
	CORSOrigin string `yaml:"cors_origin"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "mongo".
	Driver        string `yaml:"driver"`
	Path          string `yaml:"path"`
	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`
}

type AIConfig struct {
	// Backend is "gemini" or "ollama".
	Backend    string        `yaml:"backend"`
	Model      string        `yaml:"model"`
	OllamaHost string        `yaml:"ollama_host"`
	Timeout    time.Duration `yaml:"timeout"`

	// APIKey is read from GEMINI_API_KEY only.
	APIKey string `yaml:"-"`
}

type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	RatePerSecond float64       `yaml:"rate_per_second"`
	UserAgent     string        `yaml:"user_agent"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// AI backends.
const (
	BackendGemini = "gemini"
	BackendOllama = "ollama"
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Server:   ServerConfig{Addr: ":3000"},
		Database: DatabaseConfig{Driver: DriverSQLite, Path: defaultDBPath(), MongoDatabase: "nicobar"},
		AI:       AIConfig{Backend: BackendGemini, Timeout: 2 * time.Minute},
		HTTP:     HTTPConfig{Timeout: 10 * time.Second, RatePerSecond: 1},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error unless required.
func LoadConfig(path string, required bool, getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg.applyEnv(getenv)
	cfg.Database.Path = expandPath(cfg.Database.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("NICOBAR_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getenv("NICOBAR_DB"); v != "" {
		c.Database.Path = v
	}
	if v := getenv("NICOBAR_MONGO_URI"); v != "" {
		c.Database.Driver = DriverMongo
		c.Database.MongoURI = v
	}
	c.AI.APIKey = getenv("GEMINI_API_KEY")
}

// Validate reports unknown drivers, backends and log settings.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
	case DriverMongo:
		if c.Database.MongoURI == "" {
			return fmt.Errorf("database.mongo_uri required for the mongo driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	switch c.AI.Backend {
	case BackendGemini, BackendOllama:
	default:
		return fmt.Errorf("unknown ai backend %q", c.AI.Backend)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", l.Level)
	}
	return level, nil
}

// DefaultConfigPath returns $NICOBAR_CONFIG or ~/.config/nicobar/config.yaml.
func DefaultConfigPath(getenv func(string) string) string {
	if path := getenv("NICOBAR_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "nicobar", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "nicobar.db"
	}
	return filepath.Join(home, ".nicobar", "nicobar.db")
}

// expandPath expands ~ to the home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
