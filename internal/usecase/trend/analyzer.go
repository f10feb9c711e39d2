package trend

import (
	"github.com/shopspring/decimal"

	"github.com/fincast/fincast-backend/internal/domain"
)

// DefaultDeadBandPct is the percentage-change band inside which a
// trend is reported as stable. Keeps noise from flipping direction.
const DefaultDeadBandPct = 5.0

// Analyze fits an ordinary least-squares line to the series and reports
// direction, percentage change, the predicted next value and an R²
// confidence. Pure function: no side effects, deterministic.
//
// Degenerate inputs are defined cases, not failures:
//   - fewer than 2 points: stable, change 0, prediction = the single
//     value (or zero), confidence 0
//   - flat series: stable, confidence 0
func Analyze(series domain.MonthlySeries, deadBandPct float64) domain.TrendResult {
	n := series.Len()
	if n < 2 {
		predicted := decimal.Zero
		if n == 1 {
			predicted = series.First()
		}
		return domain.TrendResult{
			Direction:          domain.TrendStable,
			PercentageChange:   0,
			PredictedNextValue: predicted,
			Confidence:         0,
		}
	}

	values := series.Float64s()
	slope, intercept, rSquared := fitLine(values)

	// Fitted value one period past the series end, clamped at zero.
	predicted := intercept + slope*float64(n)
	if predicted < 0 {
		predicted = 0
	}

	pctChange := 0.0
	first := series.First()
	if first.IsPositive() {
		pctChange = series.Last().Sub(first).Div(first).InexactFloat64() * 100
	}

	// A flat series has pctChange 0, so the dead-band also covers the
	// zero-variance case required to be stable.
	direction := domain.TrendStable
	switch {
	case pctChange > deadBandPct:
		direction = domain.TrendUp
	case pctChange < -deadBandPct:
		direction = domain.TrendDown
	}

	return domain.TrendResult{
		Direction:          direction,
		PercentageChange:   pctChange,
		PredictedNextValue: decimal.NewFromFloat(predicted),
		Confidence:         rSquared,
	}
}

// AnalyzeDefault runs Analyze with the default dead-band.
func AnalyzeDefault(series domain.MonthlySeries) domain.TrendResult {
	return Analyze(series, DefaultDeadBandPct)
}

// fitLine computes slope, intercept and R² for y over x = 0..n-1.
// A flat series (zero total variance) yields R² = 0 rather than NaN.
func fitLine(values []float64) (slope, intercept, rSquared float64) {
	n := float64(len(values))

	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, sumY / n, 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for i, y := range values {
		fitted := intercept + slope*float64(i)
		ssRes += (y - fitted) * (y - fitted)
		ssTot += (y - meanY) * (y - meanY)
	}
	if ssTot == 0 {
		return slope, intercept, 0
	}
	return slope, intercept, 1 - ssRes/ssTot
}
