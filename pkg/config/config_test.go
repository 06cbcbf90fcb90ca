package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "availability", cfg.Balancer.DefaultPriority)
	assert.Equal(t, 30*time.Second, cfg.Registry.ProbeInterval)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loom.yaml")
	body := `
server:
  listen_addr: "0.0.0.0:8000"
registry:
  probe_interval: 10s
  degraded_threshold: 3
  offline_threshold: 6
balancer:
  max_concurrent_migrations: 8
messaging:
  max_messages: 250
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.Registry.ProbeInterval)
	assert.Equal(t, 3, cfg.Registry.DegradedThreshold)
	assert.Equal(t, 8, cfg.Balancer.MaxConcurrentMigrations)
	assert.Equal(t, 250, cfg.Messaging.MaxMessages)
	// Untouched sections keep defaults.
	assert.Equal(t, "least-loaded", cfg.Balancer.Strategy)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  listen_addr: \"1.2.3.4:1\"\n"), 0o644))

	t.Setenv("LOOM_SERVER_LISTEN_ADDR", "5.6.7.8:2")
	t.Setenv("LOOM_MESSAGING_MAX_MESSAGES", "77")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "5.6.7.8:2", cfg.Server.ListenAddr)
	assert.Equal(t, 77, cfg.Messaging.MaxMessages)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty listen addr", func(c *Config) { c.Server.ListenAddr = "" }},
		{"zero probe interval", func(c *Config) { c.Registry.ProbeInterval = 0 }},
		{"offline below degraded", func(c *Config) { c.Registry.OfflineThreshold = 1; c.Registry.DegradedThreshold = 3 }},
		{"zero spawn attempts", func(c *Config) { c.Balancer.MaxSpawnAttempts = 0 }},
		{"zero migrations", func(c *Config) { c.Balancer.MaxConcurrentMigrations = 0 }},
		{"zero mailbox capacity", func(c *Config) { c.Messaging.MaxMessages = 0 }},
		{"empty task path", func(c *Config) { c.TaskStore.BasePath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
