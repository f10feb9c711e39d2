package domain

import "github.com/shopspring/decimal"

// SimulatedMonth is one projected month of a what-if scenario.
type SimulatedMonth struct {
	Month             int
	Income            decimal.Decimal
	Expenses          decimal.Decimal
	Savings           decimal.Decimal
	CumulativeBalance decimal.Decimal
}

// SimulationSummary totals a simulation run.
type SimulationSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	TotalSavings  decimal.Decimal
	FinalBalance  decimal.Decimal
}

// SimulationResult is a complete synthetic cash-flow projection.
// Purely derived, never persisted.
type SimulationResult struct {
	Months  []SimulatedMonth
	Summary SimulationSummary
}

// GoalMonth is one month of a goal-achievement schedule. Saved is
// capped in the final month so Accumulated never exceeds the goal.
type GoalMonth struct {
	Month       int
	Saved       decimal.Decimal
	Accumulated decimal.Decimal
}

// GoalTimeline is the month-by-month path to a savings goal.
type GoalTimeline struct {
	GoalAmount     decimal.Decimal
	MonthlySavings decimal.Decimal
	MonthsNeeded   int
	Schedule       []GoalMonth
}

// RetirementProjection is the outcome of a compounding retirement
// scenario.
type RetirementProjection struct {
	Months             int
	TotalContributions decimal.Decimal
	EstimatedValue     decimal.Decimal

	// MonthlyIncomeEstimate applies the configured annual withdrawal
	// rate to the final value.
	MonthlyIncomeEstimate decimal.Decimal
}

// ScenarioComparison is one named what-if run set against a baseline.
type ScenarioComparison struct {
	Name          string
	IncomeChange  float64
	ExpenseChange float64
	Result        SimulationResult
	SavingsVsBase decimal.Decimal
}
