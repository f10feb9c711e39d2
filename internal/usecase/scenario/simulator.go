package scenario

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fincast/fincast-backend/internal/domain"
)

// DefaultWithdrawalAnnualRate is the retirement withdrawal heuristic:
// 4% of the final value per year.
const DefaultWithdrawalAnnualRate = 0.04

var hundred = decimal.NewFromInt(100)

// Simulate is the shared what-if primitive: it projects a constant
// monthly income and expense forward and accumulates the balance.
// Savings may be negative; the cumulative balance is not capped --
// callers that need a ceiling (the goal timeline) apply it themselves.
func Simulate(monthlyIncome, monthlyExpense decimal.Decimal, months int) (domain.SimulationResult, error) {
	if months <= 0 {
		return domain.SimulationResult{}, fmt.Errorf("months must be positive, got %d: %w", months, domain.ErrInvalidConfig)
	}

	savings := monthlyIncome.Sub(monthlyExpense)
	result := domain.SimulationResult{Months: make([]domain.SimulatedMonth, 0, months)}
	balance := decimal.Zero
	for i := 1; i <= months; i++ {
		balance = balance.Add(savings)
		result.Months = append(result.Months, domain.SimulatedMonth{
			Month:             i,
			Income:            monthlyIncome,
			Expenses:          monthlyExpense,
			Savings:           savings,
			CumulativeBalance: balance,
		})
	}

	monthsDec := decimal.NewFromInt(int64(months))
	result.Summary = domain.SimulationSummary{
		TotalIncome:   monthlyIncome.Mul(monthsDec),
		TotalExpenses: monthlyExpense.Mul(monthsDec),
		TotalSavings:  savings.Mul(monthsDec),
		FinalBalance:  balance,
	}
	return result, nil
}

// SavingsRate projects cash flow when expenses are reshaped to hit a
// target savings rate of avgIncome.
func SavingsRate(avgIncome decimal.Decimal, targetRatePct float64, months int) (domain.SimulationResult, error) {
	if targetRatePct <= 0 || targetRatePct > 100 {
		return domain.SimulationResult{}, fmt.Errorf("target savings rate must be in (0,100], got %v: %w", targetRatePct, domain.ErrInvalidConfig)
	}
	targetSavings := avgIncome.Mul(decimal.NewFromFloat(targetRatePct)).Div(hundred)
	newExpense := avgIncome.Sub(targetSavings)
	return Simulate(avgIncome, newExpense, months)
}

// ReductionResult is a before/after comparison for a category cut. The
// comparison is the point: NetBenefit is the delta in total savings,
// never just the after-state.
type ReductionResult struct {
	Before     domain.SimulationResult
	After      domain.SimulationResult
	NetBenefit decimal.Decimal
}

// CategoryReduction cuts the named category's average spend by
// reductionPct and reports the saving against the unchanged baseline.
func CategoryReduction(avgIncome, avgCategorySpend, avgOtherSpend decimal.Decimal, reductionPct float64, months int) (*ReductionResult, error) {
	if reductionPct <= 0 || reductionPct > 100 {
		return nil, fmt.Errorf("reduction percentage must be in (0,100], got %v: %w", reductionPct, domain.ErrInvalidConfig)
	}

	factor := decimal.NewFromFloat(1 - reductionPct/100)
	before, err := Simulate(avgIncome, avgCategorySpend.Add(avgOtherSpend), months)
	if err != nil {
		return nil, err
	}
	after, err := Simulate(avgIncome, avgCategorySpend.Mul(factor).Add(avgOtherSpend), months)
	if err != nil {
		return nil, err
	}
	return &ReductionResult{
		Before:     before,
		After:      after,
		NetBenefit: after.Summary.TotalSavings.Sub(before.Summary.TotalSavings),
	}, nil
}

// IncreaseResult is a before/after comparison for an income bump.
type IncreaseResult struct {
	Before            domain.SimulationResult
	After             domain.SimulationResult
	AdditionalSavings decimal.Decimal
}

// IncomeIncrease scales income by increasePct with expenses held
// constant and reports the additional savings over the baseline.
func IncomeIncrease(avgIncome, avgExpense decimal.Decimal, increasePct float64, months int) (*IncreaseResult, error) {
	if increasePct <= 0 || increasePct > 100 {
		return nil, fmt.Errorf("increase percentage must be in (0,100], got %v: %w", increasePct, domain.ErrInvalidConfig)
	}

	factor := decimal.NewFromFloat(1 + increasePct/100)
	before, err := Simulate(avgIncome, avgExpense, months)
	if err != nil {
		return nil, err
	}
	after, err := Simulate(avgIncome.Mul(factor), avgExpense, months)
	if err != nil {
		return nil, err
	}
	return &IncreaseResult{
		Before:            before,
		After:             after,
		AdditionalSavings: after.Summary.TotalSavings.Sub(before.Summary.TotalSavings),
	}, nil
}

// GoalTimeline computes the month-by-month path to a savings goal.
// A non-positive monthly savings rate can never reach a positive goal
// and fails with an invalid-scenario error rather than reporting an
// infinite or negative month count. The final month's contribution is
// capped so the accumulated total lands exactly on the goal.
func GoalTimeline(goalAmount, monthlySavings decimal.Decimal) (*domain.GoalTimeline, error) {
	if !goalAmount.IsPositive() {
		return nil, fmt.Errorf("goal amount must be positive, got %s: %w", goalAmount, domain.ErrInvalidConfig)
	}
	if !monthlySavings.IsPositive() {
		return nil, &domain.InvalidScenarioError{MonthlySavings: monthlySavings}
	}

	monthsNeeded := int(goalAmount.Div(monthlySavings).Ceil().IntPart())
	timeline := &domain.GoalTimeline{
		GoalAmount:     goalAmount,
		MonthlySavings: monthlySavings,
		MonthsNeeded:   monthsNeeded,
		Schedule:       make([]domain.GoalMonth, 0, monthsNeeded),
	}

	accumulated := decimal.Zero
	for i := 1; i <= monthsNeeded; i++ {
		saved := monthlySavings
		if accumulated.Add(saved).GreaterThan(goalAmount) {
			saved = goalAmount.Sub(accumulated)
		}
		accumulated = accumulated.Add(saved)
		timeline.Schedule = append(timeline.Schedule, domain.GoalMonth{
			Month:       i,
			Saved:       saved,
			Accumulated: accumulated,
		})
	}
	return timeline, nil
}

// Retirement compounds a fixed monthly contribution at a monthly
// return rate until retirement age, then estimates monthly retirement
// income from the configured annual withdrawal rate. A zero rate
// degenerates to pure linear accumulation.
func Retirement(currentAge, retirementAge int, monthlyContribution decimal.Decimal, monthlyRate, withdrawalAnnualRate float64) (*domain.RetirementProjection, error) {
	if retirementAge <= currentAge {
		return nil, fmt.Errorf("retirement age %d must be greater than current age %d: %w", retirementAge, currentAge, domain.ErrInvalidConfig)
	}
	if monthlyRate < 0 {
		return nil, fmt.Errorf("monthly rate must be non-negative, got %v: %w", monthlyRate, domain.ErrInvalidConfig)
	}
	if withdrawalAnnualRate <= 0 {
		return nil, fmt.Errorf("withdrawal rate must be positive, got %v: %w", withdrawalAnnualRate, domain.ErrInvalidConfig)
	}

	months := (retirementAge - currentAge) * 12
	growth := decimal.NewFromFloat(1 + monthlyRate)
	value := decimal.Zero
	for i := 0; i < months; i++ {
		value = value.Add(monthlyContribution).Mul(growth)
	}

	monthsDec := decimal.NewFromInt(int64(months))
	return &domain.RetirementProjection{
		Months:                months,
		TotalContributions:    monthlyContribution.Mul(monthsDec),
		EstimatedValue:        value,
		MonthlyIncomeEstimate: value.Mul(decimal.NewFromFloat(withdrawalAnnualRate)).Div(decimal.NewFromInt(12)),
	}, nil
}

// Adjustment is one named what-if delta for a comparison run.
type Adjustment struct {
	Name       string
	IncomePct  float64
	ExpensePct float64
}

// Compare runs one complete independent simulation per adjustment and
// returns them side by side against the unadjusted baseline. No
// cross-scenario state is shared.
func Compare(baseIncome, baseExpense decimal.Decimal, months int, adjustments []Adjustment) ([]domain.ScenarioComparison, error) {
	base, err := Simulate(baseIncome, baseExpense, months)
	if err != nil {
		return nil, err
	}

	comparisons := make([]domain.ScenarioComparison, 0, len(adjustments))
	for _, adj := range adjustments {
		income := baseIncome.Mul(decimal.NewFromFloat(1 + adj.IncomePct/100))
		expense := baseExpense.Mul(decimal.NewFromFloat(1 + adj.ExpensePct/100))
		result, err := Simulate(income, expense, months)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, domain.ScenarioComparison{
			Name:          adj.Name,
			IncomeChange:  adj.IncomePct,
			ExpenseChange: adj.ExpensePct,
			Result:        result,
			SavingsVsBase: result.Summary.TotalSavings.Sub(base.Summary.TotalSavings),
		})
	}
	return comparisons, nil
}
