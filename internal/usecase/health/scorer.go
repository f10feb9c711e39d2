package health

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/fincast/fincast-backend/internal/domain"
)

// Default mapping constants. Each sub-score maps to [0,100] linearly;
// the constants document the mapping and are tunable through Config.
const (
	DefaultSavingsWeight         = 0.30
	DefaultDiversificationWeight = 0.20
	DefaultDebtWeight            = 0.25
	DefaultEmergencyWeight       = 0.25

	// DefaultSavingsRateMultiplier scales the savings-rate percentage:
	// a 20% savings rate maxes the sub-score.
	DefaultSavingsRateMultiplier = 5.0

	// DefaultEmergencyTargetMonths of expense coverage maxes the
	// emergency-fund sub-score.
	DefaultEmergencyTargetMonths = 6.0

	// DefaultDiversificationMinShare is the share of total income a
	// source must contribute to count as distinct; two such sources
	// max the sub-score.
	DefaultDiversificationMinShare = 0.10

	diversificationPerSource = 50.0

	// warningFloor and criticalFloor split factor statuses; a factor
	// below warningFloor also emits a recommendation.
	warningFloor  = 70.0
	criticalFloor = 40.0
)

// Config tunes the scoring formulas.
type Config struct {
	SavingsWeight           float64
	DiversificationWeight   float64
	DebtWeight              float64
	EmergencyWeight         float64
	SavingsRateMultiplier   float64
	EmergencyTargetMonths   float64
	DiversificationMinShare float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		SavingsWeight:           DefaultSavingsWeight,
		DiversificationWeight:   DefaultDiversificationWeight,
		DebtWeight:              DefaultDebtWeight,
		EmergencyWeight:         DefaultEmergencyWeight,
		SavingsRateMultiplier:   DefaultSavingsRateMultiplier,
		EmergencyTargetMonths:   DefaultEmergencyTargetMonths,
		DiversificationMinShare: DefaultDiversificationMinShare,
	}
}

// Input is the snapshot the health score is computed from. All values
// are monthly trailing-window averages except TotalDebt and
// LiquidAssets, which are point-in-time balances.
type Input struct {
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	TotalDebt      decimal.Decimal
	LiquidAssets   decimal.Decimal

	// IncomeSources is the per-source breakdown of MonthlyIncome,
	// used for the diversification factor.
	IncomeSources []decimal.Decimal
}

// recommendation text per factor, emitted in factor order for every
// sub-score below the warning floor.
var recommendations = map[string]string{
	"savings_rate":    "Increase your savings rate: aim to set aside at least 20% of monthly income.",
	"diversification": "Relying on a single income source is risky: consider building a second income stream.",
	"debt_control":    "Debt payments are consuming a large share of income: prioritize paying down balances.",
	"emergency_fund":  "Build your emergency fund toward six months of expenses in liquid assets.",
}

// Score computes the weighted composite health score with the default
// configuration.
func Score(input Input) domain.HealthScore {
	return ScoreWith(input, DefaultConfig())
}

// ScoreWith computes the weighted composite health score. Pure
// function: all-zero input yields a deterministic result, never NaN.
func ScoreWith(input Input, cfg Config) domain.HealthScore {
	factors := []domain.HealthFactor{
		factor("savings_rate", savingsScore(input, cfg), cfg.SavingsWeight),
		factor("diversification", diversificationScore(input, cfg), cfg.DiversificationWeight),
		factor("debt_control", debtScore(input), cfg.DebtWeight),
		factor("emergency_fund", emergencyScore(input, cfg), cfg.EmergencyWeight),
	}

	var weighted float64
	var recs []string
	for _, f := range factors {
		weighted += f.Score * f.Weight
		if f.Score < warningFloor {
			recs = append(recs, recommendations[f.Name])
		}
	}

	composite := int(math.Round(weighted))
	return domain.HealthScore{
		Score:           composite,
		Grade:           gradeFor(composite),
		Factors:         factors,
		Recommendations: recs,
	}
}

// savingsScore maps the savings-rate percentage through the
// multiplier: min(100, rate*multiplier). Zero income scores zero.
func savingsScore(input Input, cfg Config) float64 {
	if !input.MonthlyIncome.IsPositive() {
		return 0
	}
	rate := input.MonthlyIncome.Sub(input.MonthlyExpense).Div(input.MonthlyIncome).InexactFloat64() * 100
	if rate <= 0 {
		return 0
	}
	return math.Min(100, rate*cfg.SavingsRateMultiplier)
}

// diversificationScore counts income sources contributing at least the
// minimum share of total income: min(100, sources*50).
func diversificationScore(input Input, cfg Config) float64 {
	total := decimal.Zero
	for _, src := range input.IncomeSources {
		total = total.Add(src)
	}
	if !total.IsPositive() {
		return 0
	}
	minShare := total.Mul(decimal.NewFromFloat(cfg.DiversificationMinShare))
	significant := 0
	for _, src := range input.IncomeSources {
		if src.GreaterThanOrEqual(minShare) {
			significant++
		}
	}
	return math.Min(100, float64(significant)*diversificationPerSource)
}

// debtScore is max(0, 100 - debtRatio%). Zero income means no evidence
// of debt burden and scores 100 rather than penalizing missing data.
func debtScore(input Input) float64 {
	if !input.MonthlyIncome.IsPositive() {
		return 100
	}
	ratio := input.TotalDebt.Div(input.MonthlyIncome).InexactFloat64() * 100
	return math.Max(0, 100-ratio)
}

// emergencyScore maps months of expense coverage against the target:
// min(100, coverage/target*100). Zero expenses with positive assets is
// full coverage; zero assets is zero.
func emergencyScore(input Input, cfg Config) float64 {
	if !input.MonthlyExpense.IsPositive() {
		if input.LiquidAssets.IsPositive() {
			return 100
		}
		return 0
	}
	coverage := input.LiquidAssets.Div(input.MonthlyExpense).InexactFloat64()
	return math.Min(100, coverage/cfg.EmergencyTargetMonths*100)
}

func factor(name string, score, weight float64) domain.HealthFactor {
	status := domain.FactorGood
	switch {
	case score < criticalFloor:
		status = domain.FactorCritical
	case score < warningFloor:
		status = domain.FactorWarning
	}
	return domain.HealthFactor{Name: name, Score: score, Weight: weight, Status: status}
}

func gradeFor(score int) domain.Grade {
	switch {
	case score >= 90:
		return domain.GradeA
	case score >= 80:
		return domain.GradeB
	case score >= 70:
		return domain.GradeC
	case score >= 60:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}
