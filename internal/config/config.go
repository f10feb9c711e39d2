package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all fincast configuration: server/database settings from
// the environment plus engine tuning loaded from an optional TOML file.
type Config struct {
	Port     string
	DBConn   string
	APIToken string
	LogLevel string
	Engine   EngineConfig
}

// EngineConfig holds the tuning constants for the analytics engine.
// Every formula constant the engine uses is named here so it can be
// adjusted without touching algorithm logic.
type EngineConfig struct {
	// Anomaly holds anomaly detection settings.
	Anomaly AnomalyConfig `toml:"anomaly"`

	// Trend holds trend analysis settings.
	Trend TrendConfig `toml:"trend"`

	// Forecast holds forecast window bounds.
	Forecast ForecastConfig `toml:"forecast"`

	// Health holds health scoring weights and multipliers.
	Health HealthConfig `toml:"health"`

	// Scenario holds simulation settings.
	Scenario ScenarioConfig `toml:"scenario"`
}

// AnomalyConfig tunes the anomaly detector.
type AnomalyConfig struct {
	// Threshold is the multiplier over the historical average above
	// which an amount is flagged.
	Threshold float64 `toml:"threshold"`

	// MinSamples is the minimum history length required before any
	// amount can be flagged.
	MinSamples int `toml:"min_samples"`
}

// TrendConfig tunes trend analysis.
type TrendConfig struct {
	// DeadBandPct is the percentage-change band inside which a trend
	// is reported as stable.
	DeadBandPct float64 `toml:"dead_band_pct"`
}

// ForecastConfig bounds forecast windows.
type ForecastConfig struct {
	MaxHistoricalMonths int `toml:"max_historical_months"`
	MaxForecastMonths   int `toml:"max_forecast_months"`
}

// HealthConfig tunes the health scorer.
type HealthConfig struct {
	SavingsWeight         float64 `toml:"savings_weight"`
	DiversificationWeight float64 `toml:"diversification_weight"`
	DebtWeight            float64 `toml:"debt_weight"`
	EmergencyWeight       float64 `toml:"emergency_weight"`

	// SavingsRateMultiplier scales the savings-rate percentage into a
	// sub-score; 5 means a 20% savings rate maxes the sub-score.
	SavingsRateMultiplier float64 `toml:"savings_rate_multiplier"`

	// EmergencyTargetMonths is the coverage that maxes the
	// emergency-fund sub-score.
	EmergencyTargetMonths float64 `toml:"emergency_target_months"`

	// DiversificationMinShare is the share of total income a source
	// must contribute to count as a distinct source.
	DiversificationMinShare float64 `toml:"diversification_min_share"`
}

// ScenarioConfig tunes the scenario simulator.
type ScenarioConfig struct {
	// WithdrawalAnnualRate is the retirement withdrawal heuristic
	// (0.04 = the 4% rule).
	WithdrawalAnnualRate float64 `toml:"withdrawal_annual_rate"`
}

// DefaultEngineConfig returns the documented engine defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Anomaly: AnomalyConfig{
			Threshold:  2.0,
			MinSamples: 3,
		},
		Trend: TrendConfig{
			DeadBandPct: 5.0,
		},
		Forecast: ForecastConfig{
			MaxHistoricalMonths: 12,
			MaxForecastMonths:   6,
		},
		Health: HealthConfig{
			SavingsWeight:           0.30,
			DiversificationWeight:   0.20,
			DebtWeight:              0.25,
			EmergencyWeight:         0.25,
			SavingsRateMultiplier:   5.0,
			EmergencyTargetMonths:   6.0,
			DiversificationMinShare: 0.10,
		},
		Scenario: ScenarioConfig{
			WithdrawalAnnualRate: 0.04,
		},
	}
}

// NewConfig loads configuration. Server and database settings come from
// environment variables; engine tuning comes from the TOML file at
// ENGINE_CONFIG_PATH when set, falling back to the defaults.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		DBConn:   getEnv("DB_CONN", "host=localhost port=5432 user=postgres password=postgres dbname=fincast sslmode=disable"),
		APIToken: getEnv("API_TOKEN", "dev-token"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Engine:   DefaultEngineConfig(),
	}

	if path := os.Getenv("ENGINE_CONFIG_PATH"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg.Engine); err != nil {
			return nil, fmt.Errorf("failed to load engine config %s: %w", path, err)
		}
	}

	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects tuning values the engine cannot compute with.
func (e EngineConfig) Validate() error {
	if e.Anomaly.Threshold <= 0 {
		return fmt.Errorf("anomaly threshold must be positive, got %v", e.Anomaly.Threshold)
	}
	if e.Anomaly.MinSamples < 1 {
		return fmt.Errorf("anomaly min_samples must be at least 1, got %d", e.Anomaly.MinSamples)
	}
	if e.Trend.DeadBandPct < 0 {
		return fmt.Errorf("trend dead_band_pct must be non-negative, got %v", e.Trend.DeadBandPct)
	}
	if e.Forecast.MaxHistoricalMonths < 1 || e.Forecast.MaxForecastMonths < 1 {
		return fmt.Errorf("forecast window bounds must be positive")
	}
	weightSum := e.Health.SavingsWeight + e.Health.DiversificationWeight + e.Health.DebtWeight + e.Health.EmergencyWeight
	if weightSum < 0.999 || weightSum > 1.001 {
		return fmt.Errorf("health weights must sum to 1, got %v", weightSum)
	}
	if e.Scenario.WithdrawalAnnualRate <= 0 {
		return fmt.Errorf("withdrawal_annual_rate must be positive, got %v", e.Scenario.WithdrawalAnnualRate)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
