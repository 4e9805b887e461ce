package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./search_data", cfg.Storage.DataDir)
	assert.Equal(t, "index.gob", cfg.Storage.SnapshotFile)
	assert.Equal(t, filepath.Join("./search_data", "index.gob"), cfg.Storage.SnapshotPath())
	assert.Equal(t, 50, cfg.Crawler.MaxPages)
	assert.Equal(t, 500*time.Millisecond, cfg.Crawler.Delay)
	assert.Equal(t, 10*time.Second, cfg.Crawler.Timeout)
	assert.True(t, cfg.Crawler.SameDomain)
	assert.Equal(t, 10, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
storage:
  dataDir: /tmp/idx
crawler:
  maxPages: 5
  delay: 100ms
  sameDomain: false
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/idx", cfg.Storage.DataDir)
	// Unset fields keep their defaults.
	assert.Equal(t, "index.gob", cfg.Storage.SnapshotFile)
	assert.Equal(t, 5, cfg.Crawler.MaxPages)
	assert.Equal(t, 100*time.Millisecond, cfg.Crawler.Delay)
	assert.False(t, cfg.Crawler.SameDomain)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SE_SERVER_PORT", "7070")
	t.Setenv("SE_DATA_DIR", "/var/lib/search")
	t.Setenv("SE_CRAWLER_MAX_PAGES", "25")
	t.Setenv("SE_CRAWLER_DELAY", "2s")
	t.Setenv("SE_LOGGING_LEVEL", "warn")
	t.Setenv("SE_LOGGING_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/var/lib/search", cfg.Storage.DataDir)
	assert.Equal(t, 25, cfg.Crawler.MaxPages)
	assert.Equal(t, 2*time.Second, cfg.Crawler.Delay)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestEnvOverridesIgnoreMalformedValues(t *testing.T) {
	t.Setenv("SE_SERVER_PORT", "not-a-number")
	t.Setenv("SE_CRAWLER_DELAY", "soon")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.Crawler.Delay)
}
