package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	fincastv1 "github.com/fincast/fincast-backend/internal/adapter/grpc/fincast/v1"
	"github.com/fincast/fincast-backend/internal/config"
	"github.com/fincast/fincast-backend/internal/domain"
	"github.com/fincast/fincast-backend/internal/usecase/anomaly"
	"github.com/fincast/fincast-backend/internal/usecase/classifier"
	"github.com/fincast/fincast-backend/internal/usecase/forecast"
	"github.com/fincast/fincast-backend/internal/usecase/health"
	"github.com/fincast/fincast-backend/internal/usecase/scenario"
	"github.com/fincast/fincast-backend/internal/usecase/trend"
)

// Server implements the FincastService gRPC server
type Server struct {
	fincastv1.UnimplementedFincastServiceServer

	ClassifierService *classifier.Service
	ForecastService   *forecast.Service
	ScenarioService   *scenario.Service
	HealthService     *health.Service

	Engine config.EngineConfig
	Log    *logrus.Logger
}

// NewServer creates a new gRPC server instance
func NewServer(
	classifierService *classifier.Service,
	forecastService *forecast.Service,
	scenarioService *scenario.Service,
	healthService *health.Service,
	engine config.EngineConfig,
	log *logrus.Logger,
) *Server {
	return &Server{
		ClassifierService: classifierService,
		ForecastService:   forecastService,
		ScenarioService:   scenarioService,
		HealthService:     healthService,
		Engine:            engine,
		Log:               log,
	}
}

// AnalyzeTrend handles the AnalyzeTrend RPC. The series is supplied
// inline: trend analysis is a pure function of its input.
func (s *Server) AnalyzeTrend(ctx context.Context, req *fincastv1.AnalyzeTrendRequest) (*fincastv1.AnalyzeTrendResponse, error) {
	series, err := parseSeries(req.Label, req.Values)
	if err != nil {
		return nil, err
	}

	result := trend.Analyze(series, s.Engine.Trend.DeadBandPct)
	return &fincastv1.AnalyzeTrendResponse{Trend: trendToProto(result)}, nil
}

// ClassifyTransaction handles the ClassifyTransaction RPC
func (s *Server) ClassifyTransaction(ctx context.Context, req *fincastv1.ClassifyTransactionRequest) (*fincastv1.ClassifyTransactionResponse, error) {
	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	var explicitCategory *uuid.UUID
	if req.ExplicitCategoryId != "" {
		id, err := uuid.Parse(req.ExplicitCategoryId)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid explicit_category_id format: %v", err)
		}
		explicitCategory = &id
	}

	suggestions, err := s.ClassifierService.Classify(ctx, req.Description, amount, explicitCategory)
	if err != nil {
		return nil, s.mapError(err)
	}

	protoSuggestions := make([]*fincastv1.ClassificationSuggestion, 0, len(suggestions))
	for _, sg := range suggestions {
		protoSg := &fincastv1.ClassificationSuggestion{
			CategoryName: sg.CategoryName,
			CategoryType: string(sg.CategoryType),
			Confidence:   sg.Confidence,
		}
		if sg.CategoryID != uuid.Nil {
			protoSg.CategoryId = sg.CategoryID.String()
		}
		protoSuggestions = append(protoSuggestions, protoSg)
	}
	return &fincastv1.ClassifyTransactionResponse{Suggestions: protoSuggestions}, nil
}

// LearnClassification handles the LearnClassification RPC
func (s *Server) LearnClassification(ctx context.Context, req *fincastv1.LearnClassificationRequest) (*fincastv1.LearnClassificationResponse, error) {
	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}
	categoryID, err := uuid.Parse(req.CategoryId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid category_id format: %v", err)
	}

	source := domain.LearnSource(req.Source)
	if source == "" {
		source = domain.LearnSourceUser
	}

	if err := s.ClassifierService.Learn(ctx, req.Description, amount, categoryID, source); err != nil {
		return nil, s.mapError(err)
	}
	return &fincastv1.LearnClassificationResponse{}, nil
}

// DetectAnomaly handles the DetectAnomaly RPC
func (s *Server) DetectAnomaly(ctx context.Context, req *fincastv1.DetectAnomalyRequest) (*fincastv1.DetectAnomalyResponse, error) {
	newAmount, err := parseAmount(req.NewAmount, "new_amount")
	if err != nil {
		return nil, err
	}

	cfg := anomaly.Config{
		Threshold:  s.Engine.Anomaly.Threshold,
		MinSamples: s.Engine.Anomaly.MinSamples,
	}
	if req.Threshold != 0 {
		cfg.Threshold = req.Threshold
	}
	if req.MinSamples != 0 {
		cfg.MinSamples = int(req.MinSamples)
	}

	// An empty history is a defined degenerate case for the detector,
	// so it bypasses the series constructor's non-empty rule.
	var history domain.MonthlySeries
	if len(req.History) > 0 {
		history, err = parseSeries(req.CategoryName, req.History)
		if err != nil {
			return nil, err
		}
	}

	result, err := anomaly.Detect(history, newAmount, cfg)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &fincastv1.DetectAnomalyResponse{
		IsAnomalous:    result.IsAnomalous,
		Average:        result.Average.String(),
		SampleCount:    int32(result.SampleCount),
		DeviationRatio: result.DeviationRatio,
	}, nil
}

// ForecastCashFlow handles the ForecastCashFlow RPC
func (s *Server) ForecastCashFlow(ctx context.Context, req *fincastv1.ForecastCashFlowRequest) (*fincastv1.ForecastCashFlowResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	result, err := s.ForecastService.CashFlow(ctx, userID, int(req.HistoricalMonths), int(req.ForecastMonths))
	if err != nil {
		return nil, s.mapError(err)
	}

	return &fincastv1.ForecastCashFlowResponse{
		Historical: forecastPointsToProto(result.Historical),
		Forecasts:  forecastPointsToProto(result.Forecasts),
		AvgIncome:  result.Averages.AvgIncome.String(),
		AvgExpense: result.Averages.AvgExpense.String(),
		AvgBalance: result.Averages.AvgBalance.String(),
	}, nil
}

// PredictExpenses handles the PredictExpenses RPC
func (s *Server) PredictExpenses(ctx context.Context, req *fincastv1.PredictExpensesRequest) (*fincastv1.PredictExpensesResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	prediction, err := s.ForecastService.PredictCategoryExpenses(ctx, userID, int(req.HistoricalMonths))
	if err != nil {
		return nil, s.mapError(err)
	}

	categories := make([]*fincastv1.CategoryPrediction, 0, len(prediction.Categories))
	for _, cp := range prediction.Categories {
		categories = append(categories, &fincastv1.CategoryPrediction{
			CategoryName: cp.CategoryName,
			Trend:        trendToProto(cp.Trend),
		})
	}
	return &fincastv1.PredictExpensesResponse{
		Categories: categories,
		Total:      prediction.Total.String(),
		Confidence: prediction.Confidence,
	}, nil
}

// SimulateSavingsRate handles the SimulateSavingsRate RPC
func (s *Server) SimulateSavingsRate(ctx context.Context, req *fincastv1.SimulateSavingsRateRequest) (*fincastv1.SimulateSavingsRateResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	result, err := s.ScenarioService.SavingsRateForUser(ctx, userID, req.TargetRatePct, int(req.Months))
	if err != nil {
		return nil, s.mapError(err)
	}
	return &fincastv1.SimulateSavingsRateResponse{Result: simulationToProto(result)}, nil
}

// SimulateCategoryReduction handles the SimulateCategoryReduction RPC
func (s *Server) SimulateCategoryReduction(ctx context.Context, req *fincastv1.SimulateCategoryReductionRequest) (*fincastv1.SimulateCategoryReductionResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	result, err := s.ScenarioService.CategoryReductionForUser(ctx, userID, req.CategoryName, req.ReductionPct, int(req.Months))
	if err != nil {
		return nil, s.mapError(err)
	}
	return &fincastv1.SimulateCategoryReductionResponse{
		Before:     simulationToProto(result.Before),
		After:      simulationToProto(result.After),
		NetBenefit: result.NetBenefit.String(),
	}, nil
}

// SimulateIncomeIncrease handles the SimulateIncomeIncrease RPC
func (s *Server) SimulateIncomeIncrease(ctx context.Context, req *fincastv1.SimulateIncomeIncreaseRequest) (*fincastv1.SimulateIncomeIncreaseResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	result, err := s.ScenarioService.IncomeIncreaseForUser(ctx, userID, req.IncreasePct, int(req.Months))
	if err != nil {
		return nil, s.mapError(err)
	}
	return &fincastv1.SimulateIncomeIncreaseResponse{
		Before:            simulationToProto(result.Before),
		After:             simulationToProto(result.After),
		AdditionalSavings: result.AdditionalSavings.String(),
	}, nil
}

// SimulateGoalTimeline handles the SimulateGoalTimeline RPC
func (s *Server) SimulateGoalTimeline(ctx context.Context, req *fincastv1.SimulateGoalTimelineRequest) (*fincastv1.SimulateGoalTimelineResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}
	goalAmount, err := parseAmount(req.GoalAmount, "goal_amount")
	if err != nil {
		return nil, err
	}

	var explicitSavings *decimal.Decimal
	if req.MonthlySavings != "" {
		savings, err := parseAmount(req.MonthlySavings, "monthly_savings")
		if err != nil {
			return nil, err
		}
		explicitSavings = &savings
	}

	timeline, err := s.ScenarioService.GoalTimelineForUser(ctx, userID, goalAmount, explicitSavings)
	if err != nil {
		return nil, s.mapError(err)
	}

	schedule := make([]*fincastv1.GoalMonth, 0, len(timeline.Schedule))
	for _, gm := range timeline.Schedule {
		schedule = append(schedule, &fincastv1.GoalMonth{
			Month:       int32(gm.Month),
			Saved:       gm.Saved.String(),
			Accumulated: gm.Accumulated.String(),
		})
	}
	return &fincastv1.SimulateGoalTimelineResponse{
		MonthsNeeded:   int32(timeline.MonthsNeeded),
		MonthlySavings: timeline.MonthlySavings.String(),
		Schedule:       schedule,
	}, nil
}

// SimulateRetirement handles the SimulateRetirement RPC. Fully
// parametric: no user history is required.
func (s *Server) SimulateRetirement(ctx context.Context, req *fincastv1.SimulateRetirementRequest) (*fincastv1.SimulateRetirementResponse, error) {
	contribution, err := parseAmount(req.MonthlyContribution, "monthly_contribution")
	if err != nil {
		return nil, err
	}

	projection, err := scenario.Retirement(
		int(req.CurrentAge),
		int(req.RetirementAge),
		contribution,
		req.MonthlyRate,
		s.Engine.Scenario.WithdrawalAnnualRate,
	)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &fincastv1.SimulateRetirementResponse{
		Months:                int32(projection.Months),
		TotalContributions:    projection.TotalContributions.String(),
		EstimatedValue:        projection.EstimatedValue.String(),
		MonthlyIncomeEstimate: projection.MonthlyIncomeEstimate.String(),
	}, nil
}

// CompareScenarios handles the CompareScenarios RPC
func (s *Server) CompareScenarios(ctx context.Context, req *fincastv1.CompareScenariosRequest) (*fincastv1.CompareScenariosResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	adjustments := make([]scenario.Adjustment, 0, len(req.Adjustments))
	for _, adj := range req.Adjustments {
		adjustments = append(adjustments, scenario.Adjustment{
			Name:       adj.Name,
			IncomePct:  adj.IncomePct,
			ExpensePct: adj.ExpensePct,
		})
	}

	comparisons, err := s.ScenarioService.CompareForUser(ctx, userID, int(req.Months), adjustments)
	if err != nil {
		return nil, s.mapError(err)
	}

	protoComparisons := make([]*fincastv1.ScenarioComparison, 0, len(comparisons))
	for _, c := range comparisons {
		protoComparisons = append(protoComparisons, &fincastv1.ScenarioComparison{
			Name:          c.Name,
			IncomePct:     c.IncomeChange,
			ExpensePct:    c.ExpenseChange,
			Result:        simulationToProto(c.Result),
			SavingsVsBase: c.SavingsVsBase.String(),
		})
	}
	return &fincastv1.CompareScenariosResponse{Comparisons: protoComparisons}, nil
}

// GetHealthScore handles the GetHealthScore RPC
func (s *Server) GetHealthScore(ctx context.Context, req *fincastv1.GetHealthScoreRequest) (*fincastv1.GetHealthScoreResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}
	totalDebt, err := parseAmount(req.TotalDebt, "total_debt")
	if err != nil {
		return nil, err
	}
	liquidAssets, err := parseAmount(req.LiquidAssets, "liquid_assets")
	if err != nil {
		return nil, err
	}

	score, err := s.HealthService.ScoreForUser(ctx, userID, totalDebt, liquidAssets)
	if err != nil {
		return nil, s.mapError(err)
	}

	factors := make([]*fincastv1.HealthFactor, 0, len(score.Factors))
	for _, f := range score.Factors {
		factors = append(factors, &fincastv1.HealthFactor{
			Name:   f.Name,
			Score:  f.Score,
			Weight: f.Weight,
			Status: string(f.Status),
		})
	}
	return &fincastv1.GetHealthScoreResponse{
		Score:           int32(score.Score),
		Grade:           string(score.Grade),
		Factors:         factors,
		Recommendations: score.Recommendations,
	}, nil
}

// parseAmount parses a decimal string field, empty meaning zero.
func parseAmount(value, field string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return amount, nil
}

// parseSeries builds a validated MonthlySeries from decimal strings.
func parseSeries(label string, values []string) (domain.MonthlySeries, error) {
	parsed := make([]decimal.Decimal, 0, len(values))
	for i, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return domain.MonthlySeries{}, status.Errorf(codes.InvalidArgument, "invalid series value at index %d: %v", i, err)
		}
		parsed = append(parsed, d)
	}
	series, err := domain.NewMonthlySeries(label, parsed)
	if err != nil {
		return domain.MonthlySeries{}, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return series, nil
}

func trendToProto(result domain.TrendResult) *fincastv1.TrendResult {
	return &fincastv1.TrendResult{
		Direction:          string(result.Direction),
		PercentageChange:   result.PercentageChange,
		PredictedNextValue: result.PredictedNextValue.String(),
		Confidence:         result.Confidence,
	}
}

func forecastPointsToProto(points []domain.ForecastPoint) []*fincastv1.ForecastPoint {
	out := make([]*fincastv1.ForecastPoint, 0, len(points))
	for _, p := range points {
		out = append(out, &fincastv1.ForecastPoint{
			Month:   p.Month.String(),
			Kind:    string(p.Kind),
			Income:  p.Income.String(),
			Expense: p.Expense.String(),
			Balance: p.Balance.String(),
		})
	}
	return out
}

func simulationToProto(result domain.SimulationResult) *fincastv1.SimulationResult {
	months := make([]*fincastv1.SimulatedMonth, 0, len(result.Months))
	for _, m := range result.Months {
		months = append(months, &fincastv1.SimulatedMonth{
			Month:             int32(m.Month),
			Income:            m.Income.String(),
			Expenses:          m.Expenses.String(),
			Savings:           m.Savings.String(),
			CumulativeBalance: m.CumulativeBalance.String(),
		})
	}
	return &fincastv1.SimulationResult{
		Months: months,
		Summary: &fincastv1.SimulationSummary{
			TotalIncome:   result.Summary.TotalIncome.String(),
			TotalExpenses: result.Summary.TotalExpenses.String(),
			TotalSavings:  result.Summary.TotalSavings.String(),
			FinalBalance:  result.Summary.FinalBalance.String(),
		},
	}
}

// mapError converts domain errors to gRPC status errors
func (s *Server) mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidConfig):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrInvalidScenario):
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	case errors.Is(err, domain.ErrCategoryNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	}

	if s.Log != nil {
		s.Log.WithError(err).Error("internal error")
	}
	return status.Errorf(codes.Internal, "%s", err.Error())
}
