// Package config loads application configuration from a YAML file with
// environment-variable overrides, providing sensible defaults for every
// setting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Crawler CrawlerConfig `yaml:"crawler"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// StorageConfig controls where the index snapshot lives.
type StorageConfig struct {
	DataDir      string `yaml:"dataDir"`
	SnapshotFile string `yaml:"snapshotFile"`
}

// SnapshotPath returns the full path of the index snapshot file.
func (s StorageConfig) SnapshotPath() string {
	return filepath.Join(s.DataDir, s.SnapshotFile)
}

// CrawlerConfig controls the page-acquisition collaborator.
type CrawlerConfig struct {
	MaxPages   int           `yaml:"maxPages"`
	Delay      time.Duration `yaml:"delay"`
	Timeout    time.Duration `yaml:"timeout"`
	SameDomain bool          `yaml:"sameDomain"`
	UserAgent  string        `yaml:"userAgent"`
}

// SearchConfig controls query result limits.
type SearchConfig struct {
	DefaultLimit    int `yaml:"defaultLimit"`
	MaxLimit        int `yaml:"maxLimit"`
	MaxSuggestions  int `yaml:"maxSuggestions"`
	MinPrefixLength int `yaml:"minPrefixLength"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file (if path is non-empty) and applies
// environment-variable overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Storage: StorageConfig{
			DataDir:      "./search_data",
			SnapshotFile: "index.gob",
		},
		Crawler: CrawlerConfig{
			MaxPages:   50,
			Delay:      500 * time.Millisecond,
			Timeout:    10 * time.Second,
			SameDomain: true,
			UserAgent:  "Educational-SearchEngine-Bot/1.0",
		},
		Search: SearchConfig{
			DefaultLimit:    10,
			MaxLimit:        100,
			MaxSuggestions:  5,
			MinPrefixLength: 2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides reads SE_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SE_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("SE_CRAWLER_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Crawler.MaxPages = n
		}
	}
	if v := os.Getenv("SE_CRAWLER_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Crawler.Delay = d
		}
	}
	if v := os.Getenv("SE_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SE_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
