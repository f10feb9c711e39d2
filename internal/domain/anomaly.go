package domain

import "github.com/shopspring/decimal"

// AnomalyResult is the verdict for a single transaction amount checked
// against its category's historical average. Ephemeral.
type AnomalyResult struct {
	IsAnomalous bool

	// Average is the mean of the historical window the amount was
	// compared against.
	Average decimal.Decimal

	// SampleCount is the number of historical observations considered.
	SampleCount int

	// DeviationRatio is newAmount/average, 0 when the average is 0.
	DeviationRatio float64
}
