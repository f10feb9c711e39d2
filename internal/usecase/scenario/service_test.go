package scenario

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

// sixMonthWindow returns 1000 income, 300 groceries and 500 rent per
// month over January through June 2025.
func sixMonthWindow() []domain.MonthlyAggregate {
	salaryID, groceriesID, rentID := uuid.New(), uuid.New(), uuid.New()
	var aggregates []domain.MonthlyAggregate
	month := domain.Month{Year: 2025, Month: time.January}
	for i := 0; i < 6; i++ {
		aggregates = append(aggregates,
			domain.MonthlyAggregate{Month: month, CategoryID: salaryID, CategoryName: "Salary", CategoryType: domain.CategoryTypeIncome, Actual: decimal.NewFromInt(1000)},
			domain.MonthlyAggregate{Month: month, CategoryID: groceriesID, CategoryName: "Groceries", CategoryType: domain.CategoryTypeExpense, Actual: decimal.NewFromInt(300)},
			domain.MonthlyAggregate{Month: month, CategoryID: rentID, CategoryName: "Rent", CategoryType: domain.CategoryTypeExpense, Actual: decimal.NewFromInt(500)},
		)
		month = month.Next()
	}
	return aggregates
}

func TestSavingsRateForUser(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	from := domain.Month{Year: 2025, Month: time.January}
	to := domain.Month{Year: 2025, Month: time.June}
	mockAggregates.On("MonthlyTotals", ctx, userID, from, to).Return(sixMonthWindow(), nil)

	result, err := service.SavingsRateForUser(ctx, userID, 30, 6)

	require.NoError(t, err)
	// 30% of the 1000 average income saved each month.
	assert.True(t, result.Months[0].Savings.Equal(decimal.NewFromInt(300)))
	assert.True(t, result.Summary.FinalBalance.Equal(decimal.NewFromInt(1800)))
}

func TestCategoryReductionForUser(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return(sixMonthWindow(), nil)

	// Category match is case-insensitive.
	result, err := service.CategoryReductionForUser(ctx, userID, "GROCERIES", 50, 12)

	require.NoError(t, err)
	assert.True(t, result.Before.Months[0].Expenses.Equal(decimal.NewFromInt(800)))
	assert.True(t, result.After.Months[0].Expenses.Equal(decimal.NewFromInt(650)))
	assert.True(t, result.NetBenefit.Equal(decimal.NewFromInt(1800)), "net benefit %s", result.NetBenefit)
}

func TestCategoryReductionForUser_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return(sixMonthWindow(), nil)

	_, err := service.CategoryReductionForUser(ctx, userID, "Yachts", 50, 12)

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestIncomeIncreaseForUser(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return(sixMonthWindow(), nil)

	result, err := service.IncomeIncreaseForUser(ctx, userID, 10, 12)

	require.NoError(t, err)
	assert.True(t, result.After.Months[0].Income.Equal(decimal.NewFromInt(1100)))
	assert.True(t, result.AdditionalSavings.Equal(decimal.NewFromInt(1200)))
}

func TestGoalTimelineForUser_DerivedSavings(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return(sixMonthWindow(), nil)

	// Derived savings: 1000 income - 800 expenses = 200 per month.
	timeline, err := service.GoalTimelineForUser(ctx, userID, decimal.NewFromInt(1000), nil)

	require.NoError(t, err)
	assert.Equal(t, 5, timeline.MonthsNeeded)
	assert.True(t, timeline.MonthlySavings.Equal(decimal.NewFromInt(200)))
}

func TestGoalTimelineForUser_ExplicitSavingsOverride(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	explicit := decimal.NewFromInt(500)
	timeline, err := service.GoalTimelineForUser(ctx, uuid.New(), decimal.NewFromInt(1000), &explicit)

	require.NoError(t, err)
	assert.Equal(t, 2, timeline.MonthsNeeded)
	mockAggregates.AssertNotCalled(t, "MonthlyTotals")
}

func TestGoalTimelineForUser_OverspendingUser(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	// Expenses exceed income: the derived savings rate is negative.
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return([]domain.MonthlyAggregate{
		{Month: domain.Month{Year: 2025, Month: time.June}, CategoryName: "Salary", CategoryType: domain.CategoryTypeIncome, Actual: decimal.NewFromInt(1000)},
		{Month: domain.Month{Year: 2025, Month: time.June}, CategoryName: "Rent", CategoryType: domain.CategoryTypeExpense, Actual: decimal.NewFromInt(2000)},
	}, nil)

	_, err := service.GoalTimelineForUser(ctx, userID, decimal.NewFromInt(1000), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
}

func TestCompareForUser(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := testService(mockAggregates)

	userID := uuid.New()
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return(sixMonthWindow(), nil)

	comparisons, err := service.CompareForUser(ctx, userID, 12, []Adjustment{
		{Name: "Raise", IncomePct: 10},
	})

	require.NoError(t, err)
	require.Len(t, comparisons, 1)
	assert.True(t, comparisons[0].SavingsVsBase.Equal(decimal.NewFromInt(1200)))
}
