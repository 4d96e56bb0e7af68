package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(APIURLEnv, "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultAPITimeout, cfg.API.Timeout())
	assert.Equal(t, "file", cfg.Theme.Store)
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
http:
  address: ":9000"
api:
  base_url: "http://backend:8080/"
  timeout_seconds: 3
kafka:
  brokers: ["kafka:9092"]
  invalidation_topic: "airdesk.invalidations"
  group_id: "airdesk"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv(APIURLEnv, "")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTP.Address)
	assert.Equal(t, "http://backend:8080", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout())
	assert.True(t, cfg.Kafka.Enabled())

	t.Setenv(APIURLEnv, "https://ops.example.com/")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://ops.example.com", cfg.API.BaseURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  store: mongo\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("kafka:\n  brokers: [\"k:9092\"]\n"), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
