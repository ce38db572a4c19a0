package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "STORE_BACKEND", "STORAGE_KEY", "SEED_EMAIL", "PANEL_SWITCH_DELAY", "NOTIFICATION_TTL", "CLIENT_IDLE_TIMEOUT", "REDIS_DB"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, "eb_users", cfg.StorageKey)
	assert.Equal(t, "user@enquero.com", cfg.SeedEmail)
	assert.Equal(t, 1200*time.Millisecond, cfg.PanelSwitchDelay)
	assert.Equal(t, 3500*time.Millisecond, cfg.NotificationTTL)
	assert.Equal(t, 30*time.Minute, cfg.ClientIdleTimeout)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", BackendRedis)
	t.Setenv("REDIS_DB", "3")
	t.Setenv("PANEL_SWITCH_DELAY", "2s")
	t.Setenv("NOTIFICATION_TTL", "500")
	t.Setenv("CLIENT_IDLE_TIMEOUT", "10m")

	cfg := Load()

	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2*time.Second, cfg.PanelSwitchDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.NotificationTTL)
	assert.Equal(t, 10*time.Minute, cfg.ClientIdleTimeout)
}

func TestGetEnvDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_DELAY", "soon")
	assert.Equal(t, time.Second, getEnvDuration("SOME_DELAY", time.Second))

	t.Setenv("SOME_DELAY", "-5")
	assert.Equal(t, time.Second, getEnvDuration("SOME_DELAY", time.Second))
}
