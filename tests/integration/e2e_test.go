//go:build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	fincastv1 "github.com/fincast/fincast-backend/internal/adapter/grpc/fincast/v1"
	"github.com/fincast/fincast-backend/internal/adapter/repository/postgres"
	"github.com/fincast/fincast-backend/internal/domain"
)

var (
	db             *postgres.DB
	grpcClient     fincastv1.FincastServiceClient
	grpcConn       *grpc.ClientConn
	testUserID     uuid.UUID
	testCategories map[string]uuid.UUID // Maps category name to ID
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	ctx := context.Background()

	// 1. Connect to Database
	var err error
	db, err = postgres.NewDB(getDBConnectionString())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	defer db.Close()

	// 2. Connect to gRPC Server
	grpcConn, err = grpc.NewClient(getGRPCAddress(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}
	defer grpcConn.Close()

	grpcClient = fincastv1.NewFincastServiceClient(grpcConn)

	// 3. Self-Healing Setup: Create categories and a year of entries if
	// they don't exist
	testUserID = uuid.MustParse("6f1f64f4-58bf-4c0a-9cbb-000000e2e001")
	testCategories = make(map[string]uuid.UUID)
	if err := setupCategories(ctx); err != nil {
		panic(fmt.Sprintf("Failed to setup categories: %v", err))
	}
	if err := setupMonthlyEntries(ctx); err != nil {
		panic(fmt.Sprintf("Failed to setup monthly entries: %v", err))
	}

	code := m.Run()

	os.Exit(code)
}

// setupCategories creates the required test categories if they don't exist
func setupCategories(ctx context.Context) error {
	categories := []struct {
		name         string
		categoryType domain.CategoryType
	}{
		{"Salary", domain.CategoryTypeIncome},
		{"Freelance", domain.CategoryTypeIncome},
		{"Groceries", domain.CategoryTypeExpense},
		{"Rent", domain.CategoryTypeExpense},
		{"Subscriptions", domain.CategoryTypeExpense},
		{"Brokerage", domain.CategoryTypeInvestment},
	}

	for _, c := range categories {
		var existingID uuid.UUID
		err := db.QueryRowContext(ctx, `SELECT id FROM categories WHERE name = $1`, c.name).Scan(&existingID)
		if err == nil {
			testCategories[c.name] = existingID
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("failed to check category existence: %w", err)
		}

		id := uuid.New()
		_, err = db.ExecContext(ctx,
			`INSERT INTO categories (id, name, category_type) VALUES ($1, $2, $3)`,
			id, c.name, c.categoryType)
		if err != nil {
			return fmt.Errorf("failed to create category %s: %w", c.name, err)
		}
		testCategories[c.name] = id
	}
	return nil
}

// setupMonthlyEntries seeds twelve months of budget data ending at the
// current month so window-relative queries always find history.
func setupMonthlyEntries(ctx context.Context) error {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM monthly_entries WHERE user_id = $1`, testUserID).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count entries: %w", err)
	}
	if count > 0 {
		return nil
	}

	type seed struct {
		category string
		amount   decimal.Decimal
	}
	month := domain.MonthOf(time.Now().UTC()).AddMonths(-11)
	groceries := decimal.NewFromInt(300)
	for i := 0; i < 12; i++ {
		seeds := []seed{
			{"Salary", decimal.NewFromInt(2700)},
			{"Freelance", decimal.NewFromInt(300)},
			{"Groceries", groceries},
			{"Rent", decimal.NewFromInt(1000)},
			{"Subscriptions", decimal.NewFromInt(50)},
		}
		for _, s := range seeds {
			_, err := db.ExecContext(ctx, `
				INSERT INTO monthly_entries (id, user_id, category_id, year, month, planned_amount, actual_amount)
				VALUES ($1, $2, $3, $4, $5, $6, $6)`,
				uuid.New(), testUserID, testCategories[s.category], month.Year, int(month.Month), s.amount.String())
			if err != nil {
				return fmt.Errorf("failed to seed entry: %w", err)
			}
		}
		// Groceries ramp up 20 per month to give the trend a slope.
		groceries = groceries.Add(decimal.NewFromInt(20))
		month = month.Next()
	}
	return nil
}

// getAuthContext returns a context with authorization metadata
func getAuthContext() context.Context {
	md := metadata.New(map[string]string{
		"authorization": getAPIToken(),
	})
	return metadata.NewOutgoingContext(context.Background(), md)
}

func getAPIToken() string {
	token := os.Getenv("API_TOKEN")
	if token == "" {
		token = "dev-token"
	}
	return token
}

// getDBConnectionString returns the database connection string from environment or defaults
func getDBConnectionString() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "postgres"
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "fincast"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// getGRPCAddress returns the gRPC server address from environment or defaults
func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}
	return addr
}

func TestAnalyzeTrend(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.AnalyzeTrend(ctx, &fincastv1.AnalyzeTrendRequest{
		Label:  "Groceries",
		Values: []string{"600", "650", "700", "750", "800", "850"},
	})

	require.NoError(t, err)
	assert.Equal(t, "UP", resp.Trend.Direction)
	assert.InDelta(t, 41.67, resp.Trend.PercentageChange, 0.01)
	assert.InDelta(t, 1.0, resp.Trend.Confidence, 0.001)

	predicted, err := decimal.NewFromString(resp.Trend.PredictedNextValue)
	require.NoError(t, err)
	assert.InDelta(t, 900, predicted.InexactFloat64(), 0.01)
}

func TestClassifyAndLearnFlow(t *testing.T) {
	ctx := getAuthContext()
	groceriesID := testCategories["Groceries"]

	// A description neither the rules nor the store knows falls back to
	// the amount-sign guess.
	description := "XRT Hypermarkt Filiale " + uuid.NewString()[:8]
	before, err := grpcClient.ClassifyTransaction(ctx, &fincastv1.ClassifyTransactionRequest{
		Description: description,
		Amount:      "-45.50",
	})
	require.NoError(t, err)
	require.NotEmpty(t, before.Suggestions)
	assert.Equal(t, "EXPENSE", before.Suggestions[0].CategoryType)

	// Confirm the category twice, then expect a learned suggestion.
	for i := 0; i < 2; i++ {
		_, err = grpcClient.LearnClassification(ctx, &fincastv1.LearnClassificationRequest{
			Description: description,
			Amount:      "-45.50",
			CategoryId:  groceriesID.String(),
			Source:      "USER",
		})
		require.NoError(t, err)
	}

	after, err := grpcClient.ClassifyTransaction(ctx, &fincastv1.ClassifyTransactionRequest{
		Description: description,
		Amount:      "-45.50",
	})
	require.NoError(t, err)
	require.NotEmpty(t, after.Suggestions)
	assert.Equal(t, groceriesID.String(), after.Suggestions[0].CategoryId)
	assert.Greater(t, after.Suggestions[0].Confidence, before.Suggestions[0].Confidence)
}

func TestClassifyKeywordRule(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.ClassifyTransaction(ctx, &fincastv1.ClassifyTransactionRequest{
		Description: "Netflix monthly plan",
		Amount:      "-15.99",
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "Subscriptions", resp.Suggestions[0].CategoryName)
	assert.LessOrEqual(t, len(resp.Suggestions), 3)
}

func TestDetectAnomaly(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.DetectAnomaly(ctx, &fincastv1.DetectAnomalyRequest{
		CategoryName: "Groceries",
		History:      []string{"100", "110", "90"},
		NewAmount:    "500",
	})

	require.NoError(t, err)
	assert.True(t, resp.IsAnomalous)
	assert.Equal(t, int32(3), resp.SampleCount)
	assert.InDelta(t, 5.0, resp.DeviationRatio, 0.01)
}

func TestDetectAnomaly_InsufficientHistory(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.DetectAnomaly(ctx, &fincastv1.DetectAnomalyRequest{
		CategoryName: "Groceries",
		History:      []string{"100"},
		NewAmount:    "9000",
	})

	require.NoError(t, err)
	assert.False(t, resp.IsAnomalous)
}

func TestForecastCashFlow(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.ForecastCashFlow(ctx, &fincastv1.ForecastCashFlowRequest{
		UserId:           testUserID.String(),
		HistoricalMonths: 6,
		ForecastMonths:   3,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Historical, 6)
	assert.Len(t, resp.Forecasts, 3)
	assert.Equal(t, "HISTORICAL", resp.Historical[0].Kind)
	assert.Equal(t, "FORECAST", resp.Forecasts[0].Kind)

	avgIncome, err := decimal.NewFromString(resp.AvgIncome)
	require.NoError(t, err)
	assert.True(t, avgIncome.IsPositive())
}

func TestForecastCashFlow_InvalidWindow(t *testing.T) {
	ctx := getAuthContext()

	_, err := grpcClient.ForecastCashFlow(ctx, &fincastv1.ForecastCashFlowRequest{
		UserId:           testUserID.String(),
		HistoricalMonths: 24,
		ForecastMonths:   3,
	})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPredictExpenses(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.PredictExpenses(ctx, &fincastv1.PredictExpensesRequest{
		UserId:           testUserID.String(),
		HistoricalMonths: 6,
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Categories)

	total, err := decimal.NewFromString(resp.Total)
	require.NoError(t, err)
	assert.True(t, total.IsPositive())
}

func TestSimulateGoalTimeline(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.SimulateGoalTimeline(ctx, &fincastv1.SimulateGoalTimelineRequest{
		UserId:         testUserID.String(),
		GoalAmount:     "1000",
		MonthlySavings: "300",
	})

	require.NoError(t, err)
	assert.Equal(t, int32(4), resp.MonthsNeeded)
	require.Len(t, resp.Schedule, 4)
	assert.Equal(t, "1000", resp.Schedule[3].Accumulated)
}

func TestSimulateGoalTimeline_ImpossibleScenario(t *testing.T) {
	ctx := getAuthContext()

	_, err := grpcClient.SimulateGoalTimeline(ctx, &fincastv1.SimulateGoalTimelineRequest{
		UserId:         testUserID.String(),
		GoalAmount:     "1000",
		MonthlySavings: "-50",
	})

	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestSimulateRetirement(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.SimulateRetirement(ctx, &fincastv1.SimulateRetirementRequest{
		CurrentAge:          30,
		RetirementAge:       31,
		MonthlyContribution: "100",
		MonthlyRate:         0,
	})

	require.NoError(t, err)
	assert.Equal(t, int32(12), resp.Months)

	value, err := decimal.NewFromString(resp.EstimatedValue)
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromInt(1200)))
}

func TestCompareScenarios(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.CompareScenarios(ctx, &fincastv1.CompareScenariosRequest{
		UserId: testUserID.String(),
		Months: 12,
		Adjustments: []*fincastv1.ScenarioAdjustment{
			{Name: "Raise", IncomePct: 10},
			{Name: "Cutback", ExpensePct: -20},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Comparisons, 2)
	assert.Equal(t, "Raise", resp.Comparisons[0].Name)

	delta, err := decimal.NewFromString(resp.Comparisons[0].SavingsVsBase)
	require.NoError(t, err)
	assert.True(t, delta.IsPositive())
}

func TestGetHealthScore(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.GetHealthScore(ctx, &fincastv1.GetHealthScoreRequest{
		UserId:       testUserID.String(),
		TotalDebt:    "0",
		LiquidAssets: "10000",
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, resp.Score, int32(0))
	assert.LessOrEqual(t, resp.Score, int32(100))
	assert.NotEmpty(t, resp.Grade)
	assert.Len(t, resp.Factors, 4)
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	_, err := grpcClient.AnalyzeTrend(context.Background(), &fincastv1.AnalyzeTrendRequest{
		Label:  "x",
		Values: []string{"1", "2"},
	})

	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
