package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonth_String(t *testing.T) {
	assert.Equal(t, "2025-06", Month{Year: 2025, Month: time.June}.String())
	assert.Equal(t, "2025-11", Month{Year: 2025, Month: time.November}.String())
}

func TestMonth_Next(t *testing.T) {
	assert.Equal(t, Month{Year: 2025, Month: time.July}, Month{Year: 2025, Month: time.June}.Next())
	assert.Equal(t, Month{Year: 2026, Month: time.January}, Month{Year: 2025, Month: time.December}.Next())
}

func TestMonth_AddMonths(t *testing.T) {
	june := Month{Year: 2025, Month: time.June}

	assert.Equal(t, june, june.AddMonths(0))
	assert.Equal(t, Month{Year: 2025, Month: time.September}, june.AddMonths(3))
	assert.Equal(t, Month{Year: 2026, Month: time.February}, june.AddMonths(8))
	assert.Equal(t, Month{Year: 2024, Month: time.July}, june.AddMonths(-11))
	assert.Equal(t, Month{Year: 2023, Month: time.June}, june.AddMonths(-24))
}

func TestMonth_Before(t *testing.T) {
	june := Month{Year: 2025, Month: time.June}

	assert.True(t, Month{Year: 2025, Month: time.May}.Before(june))
	assert.True(t, Month{Year: 2024, Month: time.December}.Before(june))
	assert.False(t, june.Before(june))
	assert.False(t, Month{Year: 2025, Month: time.July}.Before(june))
}

func TestNewMonthlySeries(t *testing.T) {
	values := []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(20)}
	series, err := NewMonthlySeries("Groceries", values)

	require.NoError(t, err)
	assert.Equal(t, "Groceries", series.Label)
	assert.Equal(t, 2, series.Len())
	assert.True(t, series.First().Equal(decimal.NewFromInt(10)))
	assert.True(t, series.Last().Equal(decimal.NewFromInt(20)))

	// The series owns its own copy of the values.
	values[0] = decimal.NewFromInt(999)
	assert.True(t, series.First().Equal(decimal.NewFromInt(10)))
}

func TestNewMonthlySeries_Empty(t *testing.T) {
	_, err := NewMonthlySeries("x", nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestNewMonthlySeries_NegativeValue(t *testing.T) {
	_, err := NewMonthlySeries("x", []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, ErrNegativeValue)
}

func TestMonthlySeries_Mean(t *testing.T) {
	series, err := NewMonthlySeries("x", []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(200),
		decimal.NewFromInt(600),
	})
	require.NoError(t, err)

	assert.True(t, series.Mean().Equal(decimal.NewFromInt(300)))
	assert.True(t, MonthlySeries{}.Mean().IsZero())
}

func TestMonthlySeries_EmptyAccessors(t *testing.T) {
	var empty MonthlySeries

	assert.Zero(t, empty.Len())
	assert.True(t, empty.First().IsZero())
	assert.True(t, empty.Last().IsZero())
}
