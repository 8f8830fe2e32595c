package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-admin/pkg/config"
)

func TestLoad_DefaultsYEnv(t *testing.T) {
	t.Setenv("CATALOG_BASE_URL", "http://catalog.local/api/")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_TIMEOUT", "3s")
	t.Setenv("REDIS_ATTRIBUTES_TTL", "120")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://catalog.local/api", cfg.Catalog.BaseURL, "se elimina la barra final")
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "catalog-admin", cfg.App.Name)
}

func TestLoad_SinBaseURLFalla(t *testing.T) {
	t.Setenv("CATALOG_BASE_URL", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate_BaseURLInvalida(t *testing.T) {
	cfg := &config.Config{
		HTTP:    config.HTTPConfig{Port: 8080},
		Catalog: config.CatalogConfig{BaseURL: "catalog-sin-esquema"},
	}
	assert.Error(t, cfg.Validate())
}
