package domain

import "github.com/shopspring/decimal"

// TrendDirection is the coarse direction of a fitted trend.
type TrendDirection string

const (
	TrendUp     TrendDirection = "UP"
	TrendDown   TrendDirection = "DOWN"
	TrendStable TrendDirection = "STABLE"
)

// TrendResult is the outcome of fitting a linear model to a
// MonthlySeries. It is computed on demand and never persisted.
type TrendResult struct {
	Direction TrendDirection

	// PercentageChange is (last-first)/first*100, 0 when first is 0.
	PercentageChange float64

	// PredictedNextValue is the fitted value one period past the
	// series end, clamped to be non-negative.
	PredictedNextValue decimal.Decimal

	// Confidence is the R² of the fit, in [0,1]. A flat or degenerate
	// series has confidence 0.
	Confidence float64
}
