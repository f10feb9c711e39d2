package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidConfig is returned when a caller supplies malformed
	// configuration (non-positive months, threshold <= 0, out-of-range
	// percentages). Rejected at the boundary before any computation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidScenario is returned when a what-if scenario cannot
	// produce a finite answer, such as a goal timeline with a
	// non-positive savings rate.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrCategoryNotFound is returned by category lookups.
	ErrCategoryNotFound = errors.New("category not found")
)

// InvalidScenarioError carries the derived monthly savings that made a
// goal scenario unreachable.
type InvalidScenarioError struct {
	MonthlySavings decimal.Decimal
}

func (e *InvalidScenarioError) Error() string {
	return fmt.Sprintf("invalid scenario: monthly savings %s is not positive, goal can never be reached", e.MonthlySavings)
}

// Unwrap makes the typed error match ErrInvalidScenario with errors.Is.
func (e *InvalidScenarioError) Unwrap() error {
	return ErrInvalidScenario
}
