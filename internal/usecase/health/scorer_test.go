package health

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincast/fincast-backend/internal/domain"
)

func TestScore_AllZeroInput(t *testing.T) {
	// Deterministic degenerate case: no income, no expenses, no assets.
	// Only debt control scores (no income means no debt burden).
	result := Score(Input{})

	assert.Equal(t, 25, result.Score)
	assert.Equal(t, domain.GradeF, result.Grade)
	require.Len(t, result.Factors, 4)

	byName := make(map[string]domain.HealthFactor)
	for _, f := range result.Factors {
		byName[f.Name] = f
	}
	assert.Zero(t, byName["savings_rate"].Score)
	assert.Zero(t, byName["diversification"].Score)
	assert.Equal(t, float64(100), byName["debt_control"].Score)
	assert.Zero(t, byName["emergency_fund"].Score)

	// Every factor below the warning floor recommends, in factor order.
	require.Len(t, result.Recommendations, 3)
	assert.Contains(t, result.Recommendations[0], "savings rate")
	assert.Contains(t, result.Recommendations[1], "income source")
	assert.Contains(t, result.Recommendations[2], "emergency fund")
}

func TestScore_HealthyHousehold(t *testing.T) {
	result := Score(Input{
		MonthlyIncome:  decimal.NewFromInt(10000),
		MonthlyExpense: decimal.NewFromInt(8000),
		TotalDebt:      decimal.Zero,
		LiquidAssets:   decimal.NewFromInt(48000),
		IncomeSources:  []decimal.Decimal{decimal.NewFromInt(6000), decimal.NewFromInt(4000)},
	})

	// 20% savings rate, two significant sources, no debt, six months of
	// coverage: every factor maxes out.
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.GradeA, result.Grade)
	assert.Empty(t, result.Recommendations)
	for _, f := range result.Factors {
		assert.Equal(t, domain.FactorGood, f.Status)
	}
}

func TestSavingsScore(t *testing.T) {
	cfg := DefaultConfig()

	// 10% rate * multiplier 5 = 50.
	partial := savingsScore(Input{
		MonthlyIncome:  decimal.NewFromInt(1000),
		MonthlyExpense: decimal.NewFromInt(900),
	}, cfg)
	assert.InDelta(t, 50, partial, 0.0001)

	// Overspending floors at zero.
	overspent := savingsScore(Input{
		MonthlyIncome:  decimal.NewFromInt(1000),
		MonthlyExpense: decimal.NewFromInt(1100),
	}, cfg)
	assert.Zero(t, overspent)

	// Rates past 20% cap at 100.
	capped := savingsScore(Input{
		MonthlyIncome:  decimal.NewFromInt(1000),
		MonthlyExpense: decimal.NewFromInt(100),
	}, cfg)
	assert.Equal(t, float64(100), capped)
}

func TestDiversificationScore(t *testing.T) {
	cfg := DefaultConfig()

	single := diversificationScore(Input{
		IncomeSources: []decimal.Decimal{decimal.NewFromInt(1000)},
	}, cfg)
	assert.Equal(t, float64(50), single)

	// A source under 10% of total does not count as distinct.
	minor := diversificationScore(Input{
		IncomeSources: []decimal.Decimal{decimal.NewFromInt(950), decimal.NewFromInt(50)},
	}, cfg)
	assert.Equal(t, float64(50), minor)

	two := diversificationScore(Input{
		IncomeSources: []decimal.Decimal{decimal.NewFromInt(700), decimal.NewFromInt(300)},
	}, cfg)
	assert.Equal(t, float64(100), two)
}

func TestDebtScore(t *testing.T) {
	// Half a month of income in debt costs 50 points.
	half := debtScore(Input{
		MonthlyIncome: decimal.NewFromInt(1000),
		TotalDebt:     decimal.NewFromInt(500),
	})
	assert.InDelta(t, 50, half, 0.0001)

	// Debt beyond a full month of income floors at zero.
	deep := debtScore(Input{
		MonthlyIncome: decimal.NewFromInt(1000),
		TotalDebt:     decimal.NewFromInt(5000),
	})
	assert.Zero(t, deep)
}

func TestEmergencyScore(t *testing.T) {
	cfg := DefaultConfig()

	// Three months of coverage against a six-month target.
	halfway := emergencyScore(Input{
		MonthlyExpense: decimal.NewFromInt(1000),
		LiquidAssets:   decimal.NewFromInt(3000),
	}, cfg)
	assert.InDelta(t, 50, halfway, 0.0001)

	// No expenses with assets on hand is full coverage.
	noExpenses := emergencyScore(Input{
		LiquidAssets: decimal.NewFromInt(100),
	}, cfg)
	assert.Equal(t, float64(100), noExpenses)
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected domain.Grade
	}{
		{100, domain.GradeA},
		{90, domain.GradeA},
		{89, domain.GradeB},
		{80, domain.GradeB},
		{79, domain.GradeC},
		{70, domain.GradeC},
		{69, domain.GradeD},
		{60, domain.GradeD},
		{59, domain.GradeF},
		{0, domain.GradeF},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, gradeFor(tt.score), "score %d", tt.score)
	}
}

func TestFactorStatus(t *testing.T) {
	assert.Equal(t, domain.FactorGood, factor("x", 70, 0.25).Status)
	assert.Equal(t, domain.FactorWarning, factor("x", 69.9, 0.25).Status)
	assert.Equal(t, domain.FactorWarning, factor("x", 40, 0.25).Status)
	assert.Equal(t, domain.FactorCritical, factor("x", 39.9, 0.25).Status)
}
