package health

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

func TestScoreForUser(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := NewService(mockAggregates)
	service.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}

	userID := uuid.New()
	salaryID, freelanceID, livingID := uuid.New(), uuid.New(), uuid.New()
	var aggregates []domain.MonthlyAggregate
	month := domain.Month{Year: 2025, Month: time.January}
	for i := 0; i < 6; i++ {
		aggregates = append(aggregates,
			domain.MonthlyAggregate{Month: month, CategoryID: salaryID, CategoryName: "Salary", CategoryType: domain.CategoryTypeIncome, Actual: decimal.NewFromInt(900)},
			domain.MonthlyAggregate{Month: month, CategoryID: freelanceID, CategoryName: "Freelance", CategoryType: domain.CategoryTypeIncome, Actual: decimal.NewFromInt(100)},
			domain.MonthlyAggregate{Month: month, CategoryID: livingID, CategoryName: "Living", CategoryType: domain.CategoryTypeExpense, Actual: decimal.NewFromInt(500)},
		)
		month = month.Next()
	}
	from := domain.Month{Year: 2025, Month: time.January}
	to := domain.Month{Year: 2025, Month: time.June}
	mockAggregates.On("MonthlyTotals", ctx, userID, from, to).Return(aggregates, nil)

	result, err := service.ScoreForUser(ctx, userID, decimal.Zero, decimal.NewFromInt(3000))

	require.NoError(t, err)
	// 50% savings rate, two income sources at or over the 10% share,
	// no debt, six months of expense coverage.
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.GradeA, result.Grade)
	assert.Empty(t, result.Recommendations)
}

func TestScoreForUser_NoData(t *testing.T) {
	ctx := context.Background()
	mockAggregates := new(MockAggregateProvider)
	service := NewService(mockAggregates)

	userID := uuid.New()
	mockAggregates.On("MonthlyTotals", ctx, userID, mock.Anything, mock.Anything).Return([]domain.MonthlyAggregate{}, nil)

	result, err := service.ScoreForUser(ctx, userID, decimal.Zero, decimal.Zero)

	require.NoError(t, err)
	assert.Equal(t, 25, result.Score)
	assert.Equal(t, domain.GradeF, result.Grade)
}
