package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sales-dashboard", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "4000", cfg.App.Port)
	assert.Equal(t, ":4000", cfg.Addr())

	assert.Equal(t, 15, cfg.HTTP.ReadTimeoutSeconds)
	assert.Equal(t, 15, cfg.HTTP.WriteTimeoutSeconds)
	assert.Equal(t, 60, cfg.HTTP.IdleTimeoutSeconds)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.CORSAllowOrigins)

	assert.Equal(t, "http://localhost:4000", cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)

	assert.Equal(t, 100, cfg.Mock.Records)
	assert.Equal(t, int64(42), cfg.Mock.Seed)
	assert.Empty(t, cfg.Mock.BaseDate)

	assert.Equal(t, int64(10), cfg.Upload.MaxSizeMB)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DASH_APP_PORT", "5001")
	t.Setenv("DASH_APP_ENV", "production")
	t.Setenv("DASH_MOCK_RECORDS", "500")
	t.Setenv("DASH_MOCK_SEED", "7")
	t.Setenv("DASH_MOCK_BASE_DATE", "2025-12-01")
	t.Setenv("DASH_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.App.Port)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 500, cfg.Mock.Records)
	assert.Equal(t, int64(7), cfg.Mock.Seed)
	assert.Equal(t, "2025-12-01", cfg.Mock.BaseDate)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Production defaults to JSON logs.
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadValidation(t *testing.T) {
	t.Run("rejects an invalid log level", func(t *testing.T) {
		t.Setenv("DASH_LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects a malformed base date", func(t *testing.T) {
		t.Setenv("DASH_MOCK_BASE_DATE", "12/01/2025")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects negative record counts", func(t *testing.T) {
		t.Setenv("DASH_MOCK_RECORDS", "-5")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects a non-positive upload limit", func(t *testing.T) {
		t.Setenv("DASH_UPLOAD_MAX_SIZE_MB", "-1")
		_, err := Load()
		assert.Error(t, err)
	})
}
