package domain

// Grade is a letter grade derived from the composite health score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// FactorStatus qualifies a single health factor.
type FactorStatus string

const (
	FactorGood     FactorStatus = "GOOD"
	FactorWarning  FactorStatus = "WARNING"
	FactorCritical FactorStatus = "CRITICAL"
)

// HealthFactor is one weighted sub-score of the composite health score.
type HealthFactor struct {
	Name   string
	Score  float64
	Weight float64
	Status FactorStatus
}

// HealthScore is the weighted composite of savings rate, income
// diversification, debt control and emergency-fund coverage.
type HealthScore struct {
	Score           int
	Grade           Grade
	Factors         []HealthFactor
	Recommendations []string
}
