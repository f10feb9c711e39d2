package forecast

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fincast/fincast-backend/internal/domain"
)

// MockAggregateProvider is a mock implementation of AggregateProvider for testing
type MockAggregateProvider struct {
	mock.Mock
}

func (m *MockAggregateProvider) MonthlyTotals(ctx context.Context, userID uuid.UUID, from, to domain.Month) ([]domain.MonthlyAggregate, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyAggregate), args.Error(1)
}

func (m *MockAggregateProvider) Transactions(ctx context.Context, userID uuid.UUID, from, to domain.Month) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

func testService(aggregates domain.AggregateProvider) *Service {
	svc := NewService(aggregates)
	svc.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

// sixMonthHistory is a flat 1000 income and a 600..850 expense ramp
// over January through June 2025.
func sixMonthHistory() []domain.MonthlyAggregate {
	salaryID, livingID := uuid.New(), uuid.New()
	var aggregates []domain.MonthlyAggregate
	expense := decimal.NewFromInt(600)
	month := domain.Month{Year: 2025, Month: time.January}
	for i := 0; i < 6; i++ {
		aggregates = append(aggregates,
			domain.MonthlyAggregate{
				Month:        month,
				CategoryID:   salaryID,
				CategoryName: "Salary",
				CategoryType: domain.CategoryTypeIncome,
				Actual:       decimal.NewFromInt(1000),
			},
			domain.MonthlyAggregate{
				Month:        month,
				CategoryID:   livingID,
				CategoryName: "Living",
				CategoryType: domain.CategoryTypeExpense,
				Actual:       expense,
			},
		)
		expense = expense.Add(decimal.NewFromInt(50))
		month = month.Next()
	}
	return aggregates
}

func TestCashFlow_LinearProjection(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	from := domain.Month{Year: 2025, Month: time.January}
	to := domain.Month{Year: 2025, Month: time.June}
	mockAggregates.On("MonthlyTotals", ctx, userID, from, to).Return(sixMonthHistory(), nil)

	result, err := service.CashFlow(ctx, userID, 6, 3)

	require.NoError(t, err)
	require.Len(t, result.Historical, 6)
	require.Len(t, result.Forecasts, 3)

	assert.Equal(t, from, result.Historical[0].Month)
	assert.Equal(t, domain.ForecastPointHistorical, result.Historical[0].Kind)
	assert.True(t, result.Historical[0].Balance.Equal(decimal.NewFromInt(400)))
	assert.True(t, result.Historical[5].Balance.Equal(decimal.NewFromInt(150)))

	// Expense grows 50 per month past the last observation; income is flat.
	first := result.Forecasts[0]
	assert.Equal(t, domain.Month{Year: 2025, Month: time.July}, first.Month)
	assert.Equal(t, domain.ForecastPointForecast, first.Kind)
	assert.True(t, first.Income.Equal(decimal.NewFromInt(1000)), "income %s", first.Income)
	assert.True(t, first.Expense.Equal(decimal.NewFromInt(900)), "expense %s", first.Expense)
	assert.True(t, first.Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.Forecasts[2].Expense.Equal(decimal.NewFromInt(1000)))

	assert.True(t, result.Averages.AvgIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Averages.AvgExpense.Equal(decimal.NewFromInt(725)))
	assert.True(t, result.Averages.AvgBalance.Equal(decimal.NewFromInt(275)))
}

func TestCashFlow_MissingMonthsCountAsZero(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	// Only June has data; May is an empty month.
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return([]domain.MonthlyAggregate{
		{
			Month:        domain.Month{Year: 2025, Month: time.June},
			CategoryName: "Salary",
			CategoryType: domain.CategoryTypeIncome,
			Actual:       decimal.NewFromInt(1000),
		},
	}, nil)

	result, err := service.CashFlow(ctx, userID, 2, 1)

	require.NoError(t, err)
	require.Len(t, result.Historical, 2)
	assert.True(t, result.Historical[0].Income.IsZero())
	assert.True(t, result.Historical[1].Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Averages.AvgIncome.Equal(decimal.NewFromInt(500)))
}

func TestCashFlow_ProjectionNeverNegative(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	// Income collapsing 1000 -> 0 over two months extrapolates below
	// zero and must clamp.
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return([]domain.MonthlyAggregate{
		{
			Month:        domain.Month{Year: 2025, Month: time.May},
			CategoryName: "Salary",
			CategoryType: domain.CategoryTypeIncome,
			Actual:       decimal.NewFromInt(1000),
		},
	}, nil)

	result, err := service.CashFlow(ctx, userID, 2, 2)

	require.NoError(t, err)
	assert.True(t, result.Forecasts[0].Income.IsZero())
	assert.True(t, result.Forecasts[1].Income.IsZero())
}

func TestCashFlow_WindowBounds(t *testing.T) {
	service := testService(new(MockAggregateProvider))
	ctx := context.Background()
	userID := uuid.New()

	_, err := service.CashFlow(ctx, userID, 0, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = service.CashFlow(ctx, userID, 13, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = service.CashFlow(ctx, userID, 6, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = service.CashFlow(ctx, userID, 6, 7)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestPredictCategoryExpenses(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	groceriesID, diningID, salaryID := uuid.New(), uuid.New(), uuid.New()
	var aggregates []domain.MonthlyAggregate
	month := domain.Month{Year: 2025, Month: time.April}
	groceries := []int64{400, 420, 440}
	for i := 0; i < 3; i++ {
		aggregates = append(aggregates,
			domain.MonthlyAggregate{Month: month, CategoryID: salaryID, CategoryName: "Salary", CategoryType: domain.CategoryTypeIncome, Actual: decimal.NewFromInt(2000)},
			domain.MonthlyAggregate{Month: month, CategoryID: groceriesID, CategoryName: "Groceries", CategoryType: domain.CategoryTypeExpense, Actual: decimal.NewFromInt(groceries[i])},
			domain.MonthlyAggregate{Month: month, CategoryID: diningID, CategoryName: "Dining Out", CategoryType: domain.CategoryTypeExpense, Actual: decimal.NewFromInt(100)},
		)
		month = month.Next()
	}
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return(aggregates, nil)

	prediction, err := service.PredictCategoryExpenses(ctx, userID, 3)

	require.NoError(t, err)
	require.Len(t, prediction.Categories, 2)
	// Sorted by name, income categories excluded.
	assert.Equal(t, "Dining Out", prediction.Categories[0].CategoryName)
	assert.Equal(t, "Groceries", prediction.Categories[1].CategoryName)
	assert.Equal(t, domain.TrendStable, prediction.Categories[0].Trend.Direction)
	assert.Equal(t, domain.TrendUp, prediction.Categories[1].Trend.Direction)

	// Dining stays at 100, groceries extrapolate to 460.
	assert.True(t, prediction.Total.Equal(decimal.NewFromInt(560)), "total %s", prediction.Total)
	// Mean of confidences: flat series 0, perfect fit 1.
	assert.InDelta(t, 0.5, prediction.Confidence, 0.0001)
}

func TestPredictCategoryExpenses_NoExpenses(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return([]domain.MonthlyAggregate{}, nil)

	prediction, err := service.PredictCategoryExpenses(ctx, userID, 6)

	require.NoError(t, err)
	assert.Empty(t, prediction.Categories)
	assert.True(t, prediction.Total.IsZero())
	assert.Zero(t, prediction.Confidence)
}
