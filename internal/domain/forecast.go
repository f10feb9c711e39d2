package domain

import "github.com/shopspring/decimal"

// ForecastPointKind tags a forecast point as observed or projected.
type ForecastPointKind string

const (
	ForecastPointHistorical ForecastPointKind = "HISTORICAL"
	ForecastPointForecast   ForecastPointKind = "FORECAST"
)

// ForecastPoint is one month of a cash-flow forecast.
type ForecastPoint struct {
	Month   Month
	Kind    ForecastPointKind
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// ForecastAverages summarizes the historical window a forecast was
// built from.
type ForecastAverages struct {
	AvgIncome  decimal.Decimal
	AvgExpense decimal.Decimal
	AvgBalance decimal.Decimal
}

// ForecastResult is a whole-portfolio cash-flow projection.
type ForecastResult struct {
	Historical []ForecastPoint
	Forecasts  []ForecastPoint
	Averages   ForecastAverages
}

// CategoryPrediction is the per-category output of an expense
// prediction: each category gets its own trend fit.
type CategoryPrediction struct {
	CategoryName string
	Trend        TrendResult
}

// ExpensePrediction aggregates per-category trend fits into a
// portfolio-level next-month estimate.
type ExpensePrediction struct {
	Categories []CategoryPrediction

	// Total is the sum of the per-category predicted next values.
	Total decimal.Decimal

	// Confidence is the mean of the per-category confidences, 0 when
	// no categories are present.
	Confidence float64
}
