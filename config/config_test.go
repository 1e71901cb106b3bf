package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:5001", cfg.API.URL)
	assert.Equal(t, 100000.0, cfg.Capital.Default)
	assert.NotEmpty(t, cfg.API.CredentialsFile)
	assert.NotEmpty(t, cfg.Snapshot.DBPath)
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
api:
  url: https://journal.example.com
  credentials_file: /tmp/creds
capital:
  default: 50000
snapshot:
  db_path: /tmp/snapshot.sqlite
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://journal.example.com", cfg.API.URL)
	assert.Equal(t, 50000.0, cfg.Capital.Default)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "api": {"url": "http://localhost:5001", "credentials_file": "/tmp/creds"},
  "capital": {"default": 25000},
  "snapshot": {"db_path": "/tmp/snapshot.sqlite"}
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 25000.0, cfg.Capital.Default)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().API.URL, cfg.API.URL)
}

func TestEnvOverlay(t *testing.T) {
	t.Setenv("TRADEBOOK_API_URL", "http://env.example.com")
	t.Setenv("TRADEBOOK_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", cfg.API.URL)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mod   func(*Config)
		valid bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"missing url", func(c *Config) { c.API.URL = "" }, false},
		{"bad scheme", func(c *Config) { c.API.URL = "ftp://x" }, false},
		{"missing credentials file", func(c *Config) { c.API.CredentialsFile = "" }, false},
		{"negative capital", func(c *Config) { c.Capital.Default = -1 }, false},
		{"zero capital", func(c *Config) { c.Capital.Default = 0 }, true},
		{"missing snapshot path", func(c *Config) { c.Snapshot.DBPath = "" }, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mod(cfg)
			if tt.valid {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestSaveToFileRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.API.URL = "https://journal.example.com"

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.API.URL, loaded.API.URL)
	assert.Equal(t, cfg.Capital.Default, loaded.Capital.Default)
}
