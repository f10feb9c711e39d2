package anomaly

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincast/fincast-backend/internal/domain"
)

func history(t *testing.T, values ...float64) domain.MonthlySeries {
	t.Helper()
	decimals := make([]decimal.Decimal, len(values))
	for i, v := range values {
		decimals[i] = decimal.NewFromFloat(v)
	}
	s, err := domain.NewMonthlySeries("Groceries", decimals)
	require.NoError(t, err)
	return s
}

func TestDetect_InvalidConfig(t *testing.T) {
	_, err := Detect(history(t, 100, 100, 100), decimal.NewFromInt(500), Config{Threshold: 0, MinSamples: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = Detect(history(t, 100, 100, 100), decimal.NewFromInt(500), Config{Threshold: 2, MinSamples: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestDetect_InsufficientHistory(t *testing.T) {
	// Two samples against a minimum of three: no verdict, no error.
	result, err := Detect(history(t, 100, 100), decimal.NewFromInt(10000), DefaultConfig())

	require.NoError(t, err)
	assert.False(t, result.IsAnomalous)
	assert.Equal(t, 2, result.SampleCount)
	assert.True(t, result.Average.IsZero())
}

func TestDetect_ZeroAverage(t *testing.T) {
	result, err := Detect(history(t, 0, 0, 0), decimal.NewFromInt(50), DefaultConfig())

	require.NoError(t, err)
	assert.False(t, result.IsAnomalous)
	assert.Equal(t, 3, result.SampleCount)
}

func TestDetect_AtThresholdIsNotAnomalous(t *testing.T) {
	// Exactly 2x the average sits on the cutoff, not past it.
	result, err := Detect(history(t, 100, 100, 100), decimal.NewFromInt(200), DefaultConfig())

	require.NoError(t, err)
	assert.False(t, result.IsAnomalous)
	assert.InDelta(t, 2.0, result.DeviationRatio, 0.0001)
}

func TestDetect_AboveThreshold(t *testing.T) {
	result, err := Detect(history(t, 100, 100, 100), decimal.NewFromFloat(200.01), DefaultConfig())

	require.NoError(t, err)
	assert.True(t, result.IsAnomalous)
	assert.True(t, result.Average.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 3, result.SampleCount)
	assert.InDelta(t, 2.0001, result.DeviationRatio, 0.0001)
}

func TestDetect_LowSpendingNeverFlagged(t *testing.T) {
	// Detection is one-sided: spending far below average is fine.
	result, err := Detect(history(t, 400, 500, 600), decimal.NewFromInt(1), DefaultConfig())

	require.NoError(t, err)
	assert.False(t, result.IsAnomalous)
	assert.InDelta(t, 0.002, result.DeviationRatio, 0.0001)
}

func TestDetect_CustomThreshold(t *testing.T) {
	cfg := Config{Threshold: 1.5, MinSamples: 2}
	result, err := Detect(history(t, 100, 100), decimal.NewFromInt(160), cfg)

	require.NoError(t, err)
	assert.True(t, result.IsAnomalous)
}
