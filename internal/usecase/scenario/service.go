package scenario

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/fincast-backend/internal/domain"
)

// DefaultWindowMonths is the trailing window used to derive historical
// averages for user-scoped scenarios.
const DefaultWindowMonths = 6

// Service runs what-if scenarios seeded from a user's trailing
// averages. The simulation math itself lives in the pure functions of
// this package; the service only derives their inputs.
type Service struct {
	Aggregates domain.AggregateProvider

	WindowMonths int

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a new scenario Service instance.
func NewService(aggregates domain.AggregateProvider) *Service {
	return &Service{
		Aggregates:   aggregates,
		WindowMonths: DefaultWindowMonths,
		now:          time.Now,
	}
}

// SavingsRateForUser simulates the user's cash flow reshaped to a
// target savings rate of their historical average income.
func (s *Service) SavingsRateForUser(ctx context.Context, userID uuid.UUID, targetRatePct float64, months int) (domain.SimulationResult, error) {
	avgIncome, _, err := s.trailingAverages(ctx, userID)
	if err != nil {
		return domain.SimulationResult{}, err
	}
	return SavingsRate(avgIncome, targetRatePct, months)
}

// CategoryReductionForUser cuts the named category by reductionPct and
// reports the net benefit against the user's unchanged baseline.
func (s *Service) CategoryReductionForUser(ctx context.Context, userID uuid.UUID, categoryName string, reductionPct float64, months int) (*ReductionResult, error) {
	from, to := s.window()
	aggregates, err := s.Aggregates.MonthlyTotals(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly totals: %w", err)
	}

	windowLen := decimal.NewFromInt(int64(s.WindowMonths))
	income, category, other := decimal.Zero, decimal.Zero, decimal.Zero
	found := false
	for _, agg := range aggregates {
		switch agg.CategoryType {
		case domain.CategoryTypeIncome:
			income = income.Add(agg.Actual)
		case domain.CategoryTypeExpense:
			if strings.EqualFold(agg.CategoryName, categoryName) {
				category = category.Add(agg.Actual)
				found = true
			} else {
				other = other.Add(agg.Actual)
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("category %q has no spending in the trailing window: %w", categoryName, domain.ErrCategoryNotFound)
	}

	return CategoryReduction(
		income.Div(windowLen),
		category.Div(windowLen),
		other.Div(windowLen),
		reductionPct,
		months,
	)
}

// IncomeIncreaseForUser scales the user's average income by
// increasePct with expenses held constant.
func (s *Service) IncomeIncreaseForUser(ctx context.Context, userID uuid.UUID, increasePct float64, months int) (*IncreaseResult, error) {
	avgIncome, avgExpense, err := s.trailingAverages(ctx, userID)
	if err != nil {
		return nil, err
	}
	return IncomeIncrease(avgIncome, avgExpense, increasePct, months)
}

// GoalTimelineForUser builds the path to a savings goal. When no
// explicit monthly savings is supplied, the rate is derived from the
// user's trailing average income minus expenses; a non-positive
// derived rate fails the scenario.
func (s *Service) GoalTimelineForUser(ctx context.Context, userID uuid.UUID, goalAmount decimal.Decimal, explicitMonthlySavings *decimal.Decimal) (*domain.GoalTimeline, error) {
	var monthlySavings decimal.Decimal
	if explicitMonthlySavings != nil {
		monthlySavings = *explicitMonthlySavings
	} else {
		avgIncome, avgExpense, err := s.trailingAverages(ctx, userID)
		if err != nil {
			return nil, err
		}
		monthlySavings = avgIncome.Sub(avgExpense)
	}
	return GoalTimeline(goalAmount, monthlySavings)
}

// CompareForUser runs named adjustments against the user's trailing
// average cash flow.
func (s *Service) CompareForUser(ctx context.Context, userID uuid.UUID, months int, adjustments []Adjustment) ([]domain.ScenarioComparison, error) {
	avgIncome, avgExpense, err := s.trailingAverages(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Compare(avgIncome, avgExpense, months, adjustments)
}

func (s *Service) window() (domain.Month, domain.Month) {
	to := domain.MonthOf(s.now())
	return to.AddMonths(-(s.WindowMonths - 1)), to
}

// trailingAverages derives average monthly income and expense over the
// trailing window. Months without data count as zero, matching the
// forecaster's treatment of sparse history.
func (s *Service) trailingAverages(ctx context.Context, userID uuid.UUID) (avgIncome, avgExpense decimal.Decimal, err error) {
	from, to := s.window()
	aggregates, err := s.Aggregates.MonthlyTotals(ctx, userID, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to load monthly totals: %w", err)
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, agg := range aggregates {
		switch agg.CategoryType {
		case domain.CategoryTypeIncome:
			income = income.Add(agg.Actual)
		case domain.CategoryTypeExpense:
			expense = expense.Add(agg.Actual)
		}
	}
	windowLen := decimal.NewFromInt(int64(s.WindowMonths))
	return income.Div(windowLen), expense.Div(windowLen), nil
}
