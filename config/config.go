package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tradebook/pkg/logging"
)

// Config is the complete CLI configuration.
type Config struct {
	API      APIConfig      `json:"api" yaml:"api"`
	Capital  CapitalConfig  `json:"capital" yaml:"capital"`
	Snapshot SnapshotConfig `json:"snapshot" yaml:"snapshot"`
	Logging  logging.Config `json:"logging" yaml:"logging"`
}

// APIConfig locates the remote journal store.
type APIConfig struct {
	URL             string `json:"url" yaml:"url"`
	CredentialsFile string `json:"credentials_file" yaml:"credentials_file"`
}

// CapitalConfig holds the fallback baseline used until the store answers.
type CapitalConfig struct {
	Default float64 `json:"default" yaml:"default"`
}

// SnapshotConfig locates the local offline cache.
type SnapshotConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load returns the file config when path (or the default location)
// exists, and the environment-overridden defaults otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return LoadFromFile(path)
	}
	cfg := Default()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays TRADEBOOK_* environment variables. Values typically
// arrive via a .env file loaded at startup.
func (c *Config) applyEnv() {
	if v := os.Getenv("TRADEBOOK_API_URL"); v != "" {
		c.API.URL = v
	}
	if v := os.Getenv("TRADEBOOK_CREDENTIALS_FILE"); v != "" {
		c.API.CredentialsFile = v
	}
	if v := os.Getenv("TRADEBOOK_SNAPSHOT_DB"); v != "" {
		c.Snapshot.DBPath = v
	}
	if v := os.Getenv("TRADEBOOK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("api.url is required (set it in the config file or TRADEBOOK_API_URL)")
	}
	if !strings.HasPrefix(c.API.URL, "http://") && !strings.HasPrefix(c.API.URL, "https://") {
		return fmt.Errorf("api.url must be an http(s) URL")
	}
	if c.API.CredentialsFile == "" {
		return fmt.Errorf("api.credentials_file is required")
	}
	if c.Capital.Default < 0 {
		return fmt.Errorf("capital.default must not be negative")
	}
	if c.Snapshot.DBPath == "" {
		return fmt.Errorf("snapshot.db_path is required")
	}
	return nil
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tradebook", "config.yaml")
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".tradebook")

	return &Config{
		API: APIConfig{
			URL:             "http://localhost:5001",
			CredentialsFile: filepath.Join(dir, "credentials"),
		},
		Capital: CapitalConfig{
			Default: 100000,
		},
		Snapshot: SnapshotConfig{
			DBPath: filepath.Join(dir, "snapshot.sqlite"),
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "console",
		},
	}
}
