package anomaly

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fincast/fincast-backend/internal/domain"
)

// Default detection settings. Threshold is a multiplier over the
// historical per-category average; MinSamples is the evidence floor.
const (
	DefaultThreshold  = 2.0
	DefaultMinSamples = 3
)

// Config tunes a detection run.
type Config struct {
	Threshold  float64
	MinSamples int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold, MinSamples: DefaultMinSamples}
}

// Detect checks a new amount against its category's historical window.
//
// The check is deliberately one-sided: only spending above
// threshold * average is flagged. Unusually low spending is desirable
// and never reported. Insufficient history or a zero average resolve
// to a "not anomalous" verdict, never an error.
func Detect(history domain.MonthlySeries, newAmount decimal.Decimal, cfg Config) (domain.AnomalyResult, error) {
	if cfg.Threshold <= 0 {
		return domain.AnomalyResult{}, fmt.Errorf("threshold must be positive, got %v: %w", cfg.Threshold, domain.ErrInvalidConfig)
	}
	if cfg.MinSamples < 1 {
		return domain.AnomalyResult{}, fmt.Errorf("min samples must be at least 1, got %d: %w", cfg.MinSamples, domain.ErrInvalidConfig)
	}

	sampleCount := history.Len()
	if sampleCount < cfg.MinSamples {
		return domain.AnomalyResult{
			IsAnomalous: false,
			Average:     decimal.Zero,
			SampleCount: sampleCount,
		}, nil
	}

	average := history.Mean()
	if !average.IsPositive() {
		// Zero history average: a ratio is undefined and flagging
		// would be a divide-by-zero false positive.
		return domain.AnomalyResult{
			IsAnomalous: false,
			Average:     average,
			SampleCount: sampleCount,
		}, nil
	}

	cutoff := average.Mul(decimal.NewFromFloat(cfg.Threshold))
	return domain.AnomalyResult{
		IsAnomalous:    newAmount.GreaterThan(cutoff),
		Average:        average,
		SampleCount:    sampleCount,
		DeviationRatio: newAmount.Div(average).InexactFloat64(),
	}, nil
}
