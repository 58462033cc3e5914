package main_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	main "github.com/fwojciec/nicobar/cmd/nicobar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing optional file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), false, noEnv)

		require.NoError(t, err)
		assert.Equal(t, ":3000", cfg.Server.Addr)
		assert.Equal(t, main.DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, main.BackendGemini, cfg.AI.Backend)
		assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("missing required file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), true, noEnv)

		require.Error(t, err)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
server:
  addr: ":8080"
  cors_origin: "https://nicobar.vercel.app"
ai:
  backend: ollama
  model: mistral
  timeout: 5m
http:
  rate_per_second: 2.5
log:
  level: debug
  format: json
`)

		cfg, err := main.LoadConfig(path, true, noEnv)

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, "https://nicobar.vercel.app", cfg.Server.CORSOrigin)
		assert.Equal(t, main.BackendOllama, cfg.AI.Backend)
		assert.Equal(t, "mistral", cfg.AI.Model)
		assert.Equal(t, 5*time.Minute, cfg.AI.Timeout)
		assert.InDelta(t, 2.5, cfg.HTTP.RatePerSecond, 0.001)
		assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "server:\n  addr: \":8080\"\n")
		env := map[string]string{
			"NICOBAR_ADDR":      ":9090",
			"NICOBAR_MONGO_URI": "mongodb://localhost:27017",
			"GEMINI_API_KEY":    "secret",
		}

		cfg, err := main.LoadConfig(path, true, func(k string) string { return env[k] })

		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Server.Addr)
		assert.Equal(t, main.DriverMongo, cfg.Database.Driver)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Database.MongoURI)
		assert.Equal(t, "secret", cfg.AI.APIKey)
	})

	t.Run("expands home in database path", func(t *testing.T) {
		t.Parallel()

		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		path := writeConfig(t, "database:\n  path: ~/data/nicobar.db\n")

		cfg, err := main.LoadConfig(path, true, noEnv)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "data", "nicobar.db"), cfg.Database.Path)
	})

	t.Run("rejects invalid settings", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			content string
		}{
			{"unknown driver", "database:\n  driver: postgres\n"},
			{"mongo without uri", "database:\n  driver: mongo\n"},
			{"unknown backend", "ai:\n  backend: openai\n"},
			{"unknown log level", "log:\n  level: loud\n"},
			{"unknown log format", "log:\n  format: xml\n"},
			{"malformed yaml", "server: [\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := main.LoadConfig(writeConfig(t, tt.content), true, noEnv)

				assert.Error(t, err)
			})
		}
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Parallel()

	t.Run("environment wins", func(t *testing.T) {
		t.Parallel()

		path := main.DefaultConfigPath(func(k string) string {
			if k == "NICOBAR_CONFIG" {
				return "/etc/nicobar.yaml"
			}
			return ""
		})

		assert.Equal(t, "/etc/nicobar.yaml", path)
	})

	t.Run("falls back to user config dir", func(t *testing.T) {
		t.Parallel()

		path := main.DefaultConfigPath(noEnv)

		assert.Equal(t, "config.yaml", filepath.Base(path))
		assert.Equal(t, "nicobar", filepath.Base(filepath.Dir(path)))
	})
}
