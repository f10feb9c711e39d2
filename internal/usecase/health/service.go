package health

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/fincast-backend/internal/domain"
)

// DefaultWindowMonths is the trailing window the per-user score is
// derived from.
const DefaultWindowMonths = 6

// Service derives the scoring Input from a user's trailing aggregates.
// Debt and liquid-asset balances are not monthly aggregates and are
// supplied by the caller.
type Service struct {
	Aggregates domain.AggregateProvider

	Tuning       Config
	WindowMonths int

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a new health Service instance.
func NewService(aggregates domain.AggregateProvider) *Service {
	return &Service{
		Aggregates:   aggregates,
		Tuning:       DefaultConfig(),
		WindowMonths: DefaultWindowMonths,
		now:          time.Now,
	}
}

// ScoreForUser computes the health score from the user's trailing
// averages plus the supplied balances.
func (s *Service) ScoreForUser(ctx context.Context, userID uuid.UUID, totalDebt, liquidAssets decimal.Decimal) (domain.HealthScore, error) {
	to := domain.MonthOf(s.now())
	from := to.AddMonths(-(s.WindowMonths - 1))

	aggregates, err := s.Aggregates.MonthlyTotals(ctx, userID, from, to)
	if err != nil {
		return domain.HealthScore{}, fmt.Errorf("failed to load monthly totals: %w", err)
	}

	windowLen := decimal.NewFromInt(int64(s.WindowMonths))
	income, expense := decimal.Zero, decimal.Zero
	sourceTotals := make(map[string]decimal.Decimal)
	for _, agg := range aggregates {
		switch agg.CategoryType {
		case domain.CategoryTypeIncome:
			income = income.Add(agg.Actual)
			sourceTotals[agg.CategoryName] = sourceTotals[agg.CategoryName].Add(agg.Actual)
		case domain.CategoryTypeExpense:
			expense = expense.Add(agg.Actual)
		}
	}

	names := make([]string, 0, len(sourceTotals))
	for name := range sourceTotals {
		names = append(names, name)
	}
	sort.Strings(names)
	sources := make([]decimal.Decimal, 0, len(names))
	for _, name := range names {
		sources = append(sources, sourceTotals[name].Div(windowLen))
	}

	input := Input{
		MonthlyIncome:  income.Div(windowLen),
		MonthlyExpense: expense.Div(windowLen),
		TotalDebt:      totalDebt,
		LiquidAssets:   liquidAssets,
		IncomeSources:  sources,
	}
	return ScoreWith(input, s.Tuning), nil
}
