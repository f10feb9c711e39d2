package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("ENGINE_CONFIG_PATH", "")
	os.Unsetenv("PORT")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)

	engine := cfg.Engine
	assert.Equal(t, 2.0, engine.Anomaly.Threshold)
	assert.Equal(t, 3, engine.Anomaly.MinSamples)
	assert.Equal(t, 5.0, engine.Trend.DeadBandPct)
	assert.Equal(t, 12, engine.Forecast.MaxHistoricalMonths)
	assert.Equal(t, 6, engine.Forecast.MaxForecastMonths)
	assert.Equal(t, 0.30, engine.Health.SavingsWeight)
	assert.Equal(t, 0.04, engine.Scenario.WithdrawalAnnualRate)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewConfig_PartialEngineFile(t *testing.T) {
	// Keys absent from the file keep their defaults.
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("[anomaly]\nthreshold = 3.5\n"), 0o644))
	t.Setenv("ENGINE_CONFIG_PATH", path)

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.Engine.Anomaly.Threshold)
	assert.Equal(t, 3, cfg.Engine.Anomaly.MinSamples)
	assert.Equal(t, 5.0, cfg.Engine.Trend.DeadBandPct)
}

func TestNewConfig_InvalidEngineFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("[anomaly]\nthreshold = -1.0\n"), 0o644))
	t.Setenv("ENGINE_CONFIG_PATH", path)

	_, err := NewConfig()

	assert.Error(t, err)
}

func TestNewConfig_MissingEngineFile(t *testing.T) {
	t.Setenv("ENGINE_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := NewConfig()

	assert.Error(t, err)
}

func TestEngineConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EngineConfig)
	}{
		{"zero anomaly threshold", func(e *EngineConfig) { e.Anomaly.Threshold = 0 }},
		{"zero min samples", func(e *EngineConfig) { e.Anomaly.MinSamples = 0 }},
		{"negative dead band", func(e *EngineConfig) { e.Trend.DeadBandPct = -1 }},
		{"zero forecast window", func(e *EngineConfig) { e.Forecast.MaxHistoricalMonths = 0 }},
		{"weights not summing to one", func(e *EngineConfig) { e.Health.SavingsWeight = 0.5 }},
		{"zero withdrawal rate", func(e *EngineConfig) { e.Scenario.WithdrawalAnnualRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := DefaultEngineConfig()
			tt.mutate(&engine)
			assert.Error(t, engine.Validate())
		})
	}

	assert.NoError(t, DefaultEngineConfig().Validate())
}
