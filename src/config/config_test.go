package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LAYOUT_CONFIG", "SERVER_HOST", "BOX_CAPACITY", "POSITIONS_PER_LEVEL", "LEVELS_PER_RACK",
		"RACK_ID", "DEFAULT_POLICY", "SESSION_TTL", "CORS_ORIGINS", "LOG_LEVEL",
		"GOOGLE_DRIVE_CREDENTIALS_PATH", "GOOGLE_DRIVE_CREDENTIALS_JSON",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.DriveEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_HOST", ":9090")
	t.Setenv("BOX_CAPACITY", "250")
	t.Setenv("POSITIONS_PER_LEVEL", " 8 ")
	t.Setenv("RACK_ID", "B")
	t.Setenv("DEFAULT_POLICY", "front-back")
	t.Setenv("SESSION_TTL", "10m")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("GOOGLE_DRIVE_CREDENTIALS_JSON", "{}")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerHost)
	assert.Equal(t, models.LayoutModel{BoxCapacity: 250, PositionsPerLevel: 8, LevelsPerRack: 5, RackID: "B"}, cfg.Layout)
	assert.Equal(t, models.PolicyFrontBack, cfg.DefaultPolicy)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.DriveEnabled())
}

func TestLoad_ProfileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "rack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_policy: sequential
session_ttl: 5m
layout:
  box_capacity: 120
  positions_per_level: 6
`), 0o644))
	t.Setenv("LAYOUT_CONFIG", path)
	t.Setenv("BOX_CAPACITY", "100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, models.PolicySequential, cfg.DefaultPolicy)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 100, cfg.Layout.BoxCapacity)
	assert.Equal(t, 6, cfg.Layout.PositionsPerLevel)
	assert.Equal(t, models.DefaultLevelsPerRack, cfg.Layout.LevelsPerRack)
	assert.Equal(t, models.DefaultRackID, cfg.Layout.RackID)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"non numeric capacity": {"BOX_CAPACITY": "mucho"},
		"zero levels":          {"LEVELS_PER_RACK": "0"},
		"unknown policy":       {"DEFAULT_POLICY": "random"},
		"bad ttl":              {"SESSION_TTL": "soon"},
		"missing profile":      {"LAYOUT_CONFIG": "/does/not/exist.yaml"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
