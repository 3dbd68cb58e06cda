package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Generator.DataCentre)
	assert.Equal(t, "development", cfg.Generator.Environment)
	assert.Equal(t, "entity", cfg.Generator.Type)
	assert.Equal(t, "base58", cfg.Generator.Format)
	assert.Equal(t, 1000, cfg.Generator.MaxBatch)
	assert.Equal(t, uint8(3), cfg.Generator.Environments["production"])
	assert.Equal(t, uint8(0), cfg.Generator.DataCentres["local"])
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
generator:
  data_centre: eu-west
  environment: production
  type: order
  format: hex
  data_centres:
    eu-west: 1
    us-east: 2
  environments:
    production: 3
  types:
    user: 1
    order: 2
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "eu-west", cfg.Generator.DataCentre)
	assert.Equal(t, "hex", cfg.Generator.Format)
	assert.Equal(t, map[string]uint8{"eu-west": 1, "us-east": 2}, cfg.Generator.DataCentres)
	assert.Equal(t, uint16(2), cfg.Generator.Types["order"])
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMixedCaseNames(t *testing.T) {
	dir := t.TempDir()
	yaml := `
generator:
  data_centre: EU-West
  environment: Production
  type: Order
  data_centres:
    EU-West: 2
  environments:
    Production: 1
  types:
    Order: 1798
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "eu-west", cfg.Generator.DataCentre)
	assert.Equal(t, "production", cfg.Generator.Environment)
	assert.Equal(t, "order", cfg.Generator.Type)
	assert.Equal(t, map[string]uint8{"eu-west": 2}, cfg.Generator.DataCentres)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CLUSTERID_ENVIRONMENT", "staging")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Generator.Environment)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cfg := Config{Generator: GeneratorConfig{Format: "base58", MaxBatch: 0}}
	assert.Error(t, cfg.Validate())

	cfg.Generator.MaxBatch = 10
	assert.NoError(t, cfg.Validate())

	cfg.Generator.Format = "base64"
	assert.Error(t, cfg.Validate())
}
