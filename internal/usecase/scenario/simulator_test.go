package scenario

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincast/fincast-backend/internal/domain"
)

func TestSimulate(t *testing.T) {
	result, err := Simulate(decimal.NewFromInt(1000), decimal.NewFromInt(700), 3)

	require.NoError(t, err)
	require.Len(t, result.Months, 3)

	for i, m := range result.Months {
		assert.Equal(t, i+1, m.Month)
		assert.True(t, m.Savings.Equal(decimal.NewFromInt(300)))
	}
	assert.True(t, result.Months[0].CumulativeBalance.Equal(decimal.NewFromInt(300)))
	assert.True(t, result.Months[2].CumulativeBalance.Equal(decimal.NewFromInt(900)))

	assert.True(t, result.Summary.TotalIncome.Equal(decimal.NewFromInt(3000)))
	assert.True(t, result.Summary.TotalExpenses.Equal(decimal.NewFromInt(2100)))
	assert.True(t, result.Summary.TotalSavings.Equal(decimal.NewFromInt(900)))
	assert.True(t, result.Summary.FinalBalance.Equal(decimal.NewFromInt(900)))
}

func TestSimulate_NegativeSavingsAllowed(t *testing.T) {
	// Overspending is a valid scenario; the balance goes negative.
	result, err := Simulate(decimal.NewFromInt(1000), decimal.NewFromInt(1200), 2)

	require.NoError(t, err)
	assert.True(t, result.Summary.FinalBalance.Equal(decimal.NewFromInt(-400)))
}

func TestSimulate_InvalidMonths(t *testing.T) {
	_, err := Simulate(decimal.NewFromInt(1000), decimal.NewFromInt(700), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = Simulate(decimal.NewFromInt(1000), decimal.NewFromInt(700), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestSavingsRate(t *testing.T) {
	result, err := SavingsRate(decimal.NewFromInt(1000), 20, 2)

	require.NoError(t, err)
	assert.True(t, result.Months[0].Expenses.Equal(decimal.NewFromInt(800)))
	assert.True(t, result.Months[0].Savings.Equal(decimal.NewFromInt(200)))
	assert.True(t, result.Summary.FinalBalance.Equal(decimal.NewFromInt(400)))
}

func TestSavingsRate_InvalidRate(t *testing.T) {
	_, err := SavingsRate(decimal.NewFromInt(1000), 0, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = SavingsRate(decimal.NewFromInt(1000), 101, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestCategoryReduction(t *testing.T) {
	// Cutting a 200 category by half saves 100 per month.
	result, err := CategoryReduction(decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.NewFromInt(500), 50, 6)

	require.NoError(t, err)
	assert.True(t, result.Before.Months[0].Expenses.Equal(decimal.NewFromInt(700)))
	assert.True(t, result.After.Months[0].Expenses.Equal(decimal.NewFromInt(600)))
	assert.True(t, result.NetBenefit.Equal(decimal.NewFromInt(600)), "net benefit %s", result.NetBenefit)
}

func TestCategoryReduction_InvalidPct(t *testing.T) {
	_, err := CategoryReduction(decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.NewFromInt(500), 0, 6)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestIncomeIncrease(t *testing.T) {
	result, err := IncomeIncrease(decimal.NewFromInt(1000), decimal.NewFromInt(800), 10, 12)

	require.NoError(t, err)
	assert.True(t, result.After.Months[0].Income.Equal(decimal.NewFromInt(1100)))
	assert.True(t, result.After.Months[0].Expenses.Equal(decimal.NewFromInt(800)))
	assert.True(t, result.AdditionalSavings.Equal(decimal.NewFromInt(1200)))
}

func TestGoalTimeline(t *testing.T) {
	timeline, err := GoalTimeline(decimal.NewFromInt(1000), decimal.NewFromInt(300))

	require.NoError(t, err)
	assert.Equal(t, 4, timeline.MonthsNeeded)
	require.Len(t, timeline.Schedule, 4)

	assert.True(t, timeline.Schedule[0].Accumulated.Equal(decimal.NewFromInt(300)))
	assert.True(t, timeline.Schedule[2].Accumulated.Equal(decimal.NewFromInt(900)))
	// Final month only needs the remainder.
	assert.True(t, timeline.Schedule[3].Saved.Equal(decimal.NewFromInt(100)))
	assert.True(t, timeline.Schedule[3].Accumulated.Equal(decimal.NewFromInt(1000)))
}

func TestGoalTimeline_ExactDivision(t *testing.T) {
	timeline, err := GoalTimeline(decimal.NewFromInt(900), decimal.NewFromInt(300))

	require.NoError(t, err)
	assert.Equal(t, 3, timeline.MonthsNeeded)
	assert.True(t, timeline.Schedule[2].Saved.Equal(decimal.NewFromInt(300)))
	assert.True(t, timeline.Schedule[2].Accumulated.Equal(decimal.NewFromInt(900)))
}

func TestGoalTimeline_NonPositiveSavings(t *testing.T) {
	_, err := GoalTimeline(decimal.NewFromInt(1000), decimal.Zero)

	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
	var scenarioErr *domain.InvalidScenarioError
	require.True(t, errors.As(err, &scenarioErr))
	assert.True(t, scenarioErr.MonthlySavings.IsZero())
}

func TestGoalTimeline_InvalidGoal(t *testing.T) {
	_, err := GoalTimeline(decimal.Zero, decimal.NewFromInt(300))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestRetirement_ZeroRateIsLinear(t *testing.T) {
	projection, err := Retirement(30, 31, decimal.NewFromInt(100), 0, DefaultWithdrawalAnnualRate)

	require.NoError(t, err)
	assert.Equal(t, 12, projection.Months)
	assert.True(t, projection.TotalContributions.Equal(decimal.NewFromInt(1200)))
	assert.True(t, projection.EstimatedValue.Equal(decimal.NewFromInt(1200)))
	// 4% of 1200 per year is 4 per month.
	assert.True(t, projection.MonthlyIncomeEstimate.Equal(decimal.NewFromInt(4)))
}

func TestRetirement_CompoundsAboveContributions(t *testing.T) {
	projection, err := Retirement(30, 60, decimal.NewFromInt(500), 0.005, DefaultWithdrawalAnnualRate)

	require.NoError(t, err)
	assert.Equal(t, 360, projection.Months)
	assert.True(t, projection.TotalContributions.Equal(decimal.NewFromInt(180000)))
	assert.True(t, projection.EstimatedValue.GreaterThan(projection.TotalContributions))
}

func TestRetirement_InvalidInputs(t *testing.T) {
	_, err := Retirement(40, 40, decimal.NewFromInt(100), 0.005, DefaultWithdrawalAnnualRate)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = Retirement(30, 65, decimal.NewFromInt(100), -0.001, DefaultWithdrawalAnnualRate)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = Retirement(30, 65, decimal.NewFromInt(100), 0.005, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestCompare(t *testing.T) {
	adjustments := []Adjustment{
		{Name: "Raise", IncomePct: 10},
		{Name: "Austerity", ExpensePct: -25},
	}

	comparisons, err := Compare(decimal.NewFromInt(1000), decimal.NewFromInt(800), 12, adjustments)

	require.NoError(t, err)
	require.Len(t, comparisons, 2)

	assert.Equal(t, "Raise", comparisons[0].Name)
	assert.True(t, comparisons[0].SavingsVsBase.Equal(decimal.NewFromInt(1200)))

	assert.Equal(t, "Austerity", comparisons[1].Name)
	assert.True(t, comparisons[1].SavingsVsBase.Equal(decimal.NewFromInt(2400)))

	// Scenarios are independent: the raise run keeps baseline expenses.
	assert.True(t, comparisons[0].Result.Months[0].Expenses.Equal(decimal.NewFromInt(800)))
}

func TestCompare_NoAdjustments(t *testing.T) {
	comparisons, err := Compare(decimal.NewFromInt(1000), decimal.NewFromInt(800), 6, nil)

	require.NoError(t, err)
	assert.Empty(t, comparisons)
}
