package trend

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincast/fincast-backend/internal/domain"
)

func series(t *testing.T, values ...float64) domain.MonthlySeries {
	t.Helper()
	decimals := make([]decimal.Decimal, len(values))
	for i, v := range values {
		decimals[i] = decimal.NewFromFloat(v)
	}
	s, err := domain.NewMonthlySeries("test", decimals)
	require.NoError(t, err)
	return s
}

func TestAnalyze_EmptySeries(t *testing.T) {
	result := AnalyzeDefault(domain.MonthlySeries{})

	assert.Equal(t, domain.TrendStable, result.Direction)
	assert.Zero(t, result.PercentageChange)
	assert.True(t, result.PredictedNextValue.IsZero())
	assert.Zero(t, result.Confidence)
}

func TestAnalyze_SingleValue(t *testing.T) {
	result := AnalyzeDefault(series(t, 500))

	assert.Equal(t, domain.TrendStable, result.Direction)
	assert.Zero(t, result.PercentageChange)
	assert.True(t, result.PredictedNextValue.Equal(decimal.NewFromInt(500)))
	assert.Zero(t, result.Confidence)
}

func TestAnalyze_ConstantSeries(t *testing.T) {
	result := AnalyzeDefault(series(t, 300, 300, 300, 300))

	assert.Equal(t, domain.TrendStable, result.Direction)
	assert.Zero(t, result.PercentageChange)
	assert.Zero(t, result.Confidence)
	assert.InDelta(t, 300, result.PredictedNextValue.InexactFloat64(), 0.001)
}

func TestAnalyze_StrictlyIncreasing(t *testing.T) {
	// Perfectly linear monthly expenses: 600 + 50 per month.
	result := AnalyzeDefault(series(t, 600, 650, 700, 750, 800, 850))

	assert.Equal(t, domain.TrendUp, result.Direction)
	assert.InDelta(t, 41.67, result.PercentageChange, 0.01)
	assert.InDelta(t, 1.0, result.Confidence, 0.0001)
	assert.InDelta(t, 900, result.PredictedNextValue.InexactFloat64(), 0.001)
}

func TestAnalyze_StrictlyDecreasing(t *testing.T) {
	result := AnalyzeDefault(series(t, 1000, 900, 800, 700))

	assert.Equal(t, domain.TrendDown, result.Direction)
	assert.InDelta(t, -30, result.PercentageChange, 0.01)
	assert.InDelta(t, 1.0, result.Confidence, 0.0001)
	assert.InDelta(t, 600, result.PredictedNextValue.InexactFloat64(), 0.001)
}

func TestAnalyze_DeadBandReportsStable(t *testing.T) {
	// 3% change is inside the default 5% band.
	result := AnalyzeDefault(series(t, 100, 101, 102, 103))

	assert.Equal(t, domain.TrendStable, result.Direction)
	assert.InDelta(t, 3, result.PercentageChange, 0.01)
}

func TestAnalyze_JustOutsideDeadBand(t *testing.T) {
	result := AnalyzeDefault(series(t, 100, 102, 104, 106))

	assert.Equal(t, domain.TrendUp, result.Direction)
	assert.InDelta(t, 6, result.PercentageChange, 0.01)
}

func TestAnalyze_ZeroFirstValueHasNoPercentageChange(t *testing.T) {
	// A zero baseline makes percentage change undefined; the series is
	// reported stable rather than infinitely up.
	result := AnalyzeDefault(series(t, 0, 100, 200))

	assert.Equal(t, domain.TrendStable, result.Direction)
	assert.Zero(t, result.PercentageChange)
}

func TestAnalyze_PredictionClampedAtZero(t *testing.T) {
	result := AnalyzeDefault(series(t, 100, 50, 0))

	assert.Equal(t, domain.TrendDown, result.Direction)
	assert.True(t, result.PredictedNextValue.IsZero())
}

func TestAnalyze_NoisySeriesHasLowerConfidence(t *testing.T) {
	clean := AnalyzeDefault(series(t, 100, 200, 300, 400))
	noisy := AnalyzeDefault(series(t, 100, 350, 150, 400))

	assert.Greater(t, clean.Confidence, noisy.Confidence)
	assert.GreaterOrEqual(t, noisy.Confidence, 0.0)
	assert.LessOrEqual(t, noisy.Confidence, 1.0)
}

func TestFitLine(t *testing.T) {
	slope, intercept, rSquared := fitLine([]float64{10, 20, 30, 40})

	assert.InDelta(t, 10, slope, 0.0001)
	assert.InDelta(t, 10, intercept, 0.0001)
	assert.InDelta(t, 1.0, rSquared, 0.0001)
}

func TestFitLine_FlatSeries(t *testing.T) {
	slope, _, rSquared := fitLine([]float64{5, 5, 5})

	assert.Zero(t, slope)
	assert.Zero(t, rSquared)
}
