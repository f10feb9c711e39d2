package forecast

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/fincast-backend/internal/domain"
	"github.com/fincast/fincast-backend/internal/usecase/trend"
)

// Window bounds. More than a year of history dilutes recent behavior
// and more than half a year of projection is guesswork.
const (
	DefaultMaxHistoricalMonths = 12
	DefaultMaxForecastMonths   = 6
)

// amountPrecision is the number of decimal places projected amounts
// are rounded to.
const amountPrecision = 2

// Service builds whole-portfolio and per-category projections from the
// aggregates supplied by the storage boundary.
type Service struct {
	Aggregates domain.AggregateProvider

	MaxHistoricalMonths int
	MaxForecastMonths   int

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a new forecast Service instance with the default
// window bounds.
func NewService(aggregates domain.AggregateProvider) *Service {
	return &Service{
		Aggregates:          aggregates,
		MaxHistoricalMonths: DefaultMaxHistoricalMonths,
		MaxForecastMonths:   DefaultMaxForecastMonths,
		now:                 time.Now,
	}
}

// CashFlow projects income, expense and balance forecastMonths ahead
// from a trailing window of historicalMonths.
//
// Projection is linear: per-period growth is the endpoint slope of the
// historical series and each projected month extends the last observed
// value by it, clamped at zero and rounded to cents.
func (s *Service) CashFlow(ctx context.Context, userID uuid.UUID, historicalMonths, forecastMonths int) (*domain.ForecastResult, error) {
	if historicalMonths < 1 || historicalMonths > s.MaxHistoricalMonths {
		return nil, fmt.Errorf("historical months must be in [1,%d], got %d: %w", s.MaxHistoricalMonths, historicalMonths, domain.ErrInvalidConfig)
	}
	if forecastMonths < 1 || forecastMonths > s.MaxForecastMonths {
		return nil, fmt.Errorf("forecast months must be in [1,%d], got %d: %w", s.MaxForecastMonths, forecastMonths, domain.ErrInvalidConfig)
	}

	to := domain.MonthOf(s.now())
	from := to.AddMonths(-(historicalMonths - 1))

	aggregates, err := s.Aggregates.MonthlyTotals(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly totals: %w", err)
	}

	// Collapse per-category rows into one income and one expense total
	// per month. Missing months count as zero.
	incomeByMonth := make(map[domain.Month]decimal.Decimal)
	expenseByMonth := make(map[domain.Month]decimal.Decimal)
	for _, agg := range aggregates {
		switch agg.CategoryType {
		case domain.CategoryTypeIncome:
			incomeByMonth[agg.Month] = incomeByMonth[agg.Month].Add(agg.Actual)
		case domain.CategoryTypeExpense:
			expenseByMonth[agg.Month] = expenseByMonth[agg.Month].Add(agg.Actual)
		}
	}

	historical := make([]domain.ForecastPoint, 0, historicalMonths)
	var incomes, expenses []decimal.Decimal
	for m := from; ; m = m.Next() {
		income := incomeByMonth[m]
		expense := expenseByMonth[m]
		historical = append(historical, domain.ForecastPoint{
			Month:   m,
			Kind:    domain.ForecastPointHistorical,
			Income:  income,
			Expense: expense,
			Balance: income.Sub(expense),
		})
		incomes = append(incomes, income)
		expenses = append(expenses, expense)
		if m == to {
			break
		}
	}

	avgIncome := mean(incomes)
	avgExpense := mean(expenses)
	incomeGrowth := endpointSlope(incomes)
	expenseGrowth := endpointSlope(expenses)

	lastIncome := incomes[len(incomes)-1]
	lastExpense := expenses[len(expenses)-1]

	forecasts := make([]domain.ForecastPoint, 0, forecastMonths)
	for i := 1; i <= forecastMonths; i++ {
		step := decimal.NewFromInt(int64(i))
		income := clampRound(lastIncome.Add(incomeGrowth.Mul(step)))
		expense := clampRound(lastExpense.Add(expenseGrowth.Mul(step)))
		forecasts = append(forecasts, domain.ForecastPoint{
			Month:   to.AddMonths(i),
			Kind:    domain.ForecastPointForecast,
			Income:  income,
			Expense: expense,
			Balance: income.Sub(expense),
		})
	}

	return &domain.ForecastResult{
		Historical: historical,
		Forecasts:  forecasts,
		Averages: domain.ForecastAverages{
			AvgIncome:  avgIncome.Round(amountPrecision),
			AvgExpense: avgExpense.Round(amountPrecision),
			AvgBalance: avgIncome.Sub(avgExpense).Round(amountPrecision),
		},
	}, nil
}

// PredictCategoryExpenses fits a trend per expense category over the
// trailing window and sums the per-category predictions into a
// portfolio total. Overall confidence is the mean of per-category
// confidences, zero when no expense categories are present.
func (s *Service) PredictCategoryExpenses(ctx context.Context, userID uuid.UUID, historicalMonths int) (*domain.ExpensePrediction, error) {
	if historicalMonths < 1 || historicalMonths > s.MaxHistoricalMonths {
		return nil, fmt.Errorf("historical months must be in [1,%d], got %d: %w", s.MaxHistoricalMonths, historicalMonths, domain.ErrInvalidConfig)
	}

	to := domain.MonthOf(s.now())
	from := to.AddMonths(-(historicalMonths - 1))

	aggregates, err := s.Aggregates.MonthlyTotals(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly totals: %w", err)
	}

	// One value sequence per expense category, keyed by name, only for
	// the months the category actually has data. A category with one
	// data point predicts that point at confidence 0.
	type categorySeries struct {
		months []domain.Month
		values []decimal.Decimal
	}
	byCategory := make(map[string]*categorySeries)
	for _, agg := range aggregates {
		if agg.CategoryType != domain.CategoryTypeExpense {
			continue
		}
		cs, ok := byCategory[agg.CategoryName]
		if !ok {
			cs = &categorySeries{}
			byCategory[agg.CategoryName] = cs
		}
		cs.months = append(cs.months, agg.Month)
		cs.values = append(cs.values, agg.Actual)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	prediction := &domain.ExpensePrediction{Total: decimal.Zero}
	var confidenceSum float64
	for _, name := range names {
		series, err := domain.NewMonthlySeries(name, byCategory[name].values)
		if err != nil {
			return nil, fmt.Errorf("failed to build series for category %s: %w", name, err)
		}
		result := trend.AnalyzeDefault(series)
		prediction.Categories = append(prediction.Categories, domain.CategoryPrediction{
			CategoryName: name,
			Trend:        result,
		})
		prediction.Total = prediction.Total.Add(result.PredictedNextValue)
		confidenceSum += result.Confidence
	}
	if len(prediction.Categories) > 0 {
		prediction.Confidence = confidenceSum / float64(len(prediction.Categories))
	}
	prediction.Total = clampRound(prediction.Total)
	return prediction, nil
}

// mean returns the arithmetic mean, zero for an empty slice.
func mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values))))
}

// endpointSlope returns (last-first)/(n-1), the per-period linear
// growth between the window endpoints. Zero for windows shorter than 2.
func endpointSlope(values []decimal.Decimal) decimal.Decimal {
	if len(values) < 2 {
		return decimal.Zero
	}
	return values[len(values)-1].Sub(values[0]).Div(decimal.NewFromInt(int64(len(values) - 1)))
}

// clampRound clamps a projected amount at zero and rounds to cents.
// Forecasts never report negative money.
func clampRound(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v.Round(amountPrecision)
}
