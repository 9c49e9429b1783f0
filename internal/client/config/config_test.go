package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-keeper/internal/client/config"
)

func TestMustLoadDefaults(t *testing.T) {
	t.Setenv("INVENTORY_SERVER_URL", "unused")
	os.Unsetenv("INVENTORY_SERVER_URL")
	t.Setenv("INVENTORY_STATE_DIR", "/tmp/inventory-test")

	cfg := config.MustLoad()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:8080/api/v1", cfg.ServerURL)
	assert.Equal(t, "/tmp/inventory-test", cfg.StateDir)
}

func TestMustLoadFromEnv(t *testing.T) {
	t.Setenv("INVENTORY_SERVER_URL", "https://example.com/api/v1")
	t.Setenv("INVENTORY_STATE_DIR", "/var/lib/inventory")

	cfg := config.MustLoad()
	require.NotNil(t, cfg)
	assert.Equal(t, "https://example.com/api/v1", cfg.ServerURL)
	assert.Equal(t, "/var/lib/inventory", cfg.StateDir)
}
