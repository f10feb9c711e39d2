package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Month identifies a calendar month. It is the granularity of every
// aggregate the engine consumes.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String returns the month in YYYY-MM format.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// AddMonths returns the month n calendar months after m. Negative n
// moves backward.
func (m Month) AddMonths(n int) Month {
	total := m.Year*12 + int(m.Month) - 1 + n
	return Month{Year: total / 12, Month: time.Month(total%12 + 1)}
}

// Before reports whether m is earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// MonthlySeries is an ordered sequence of monthly observations
// (oldest first) for a single labeled aggregate such as a category,
// "income" or "expense". Values are monetary and non-negative.
type MonthlySeries struct {
	Label  string
	Values []decimal.Decimal
}

// NewMonthlySeries validates and builds a series.
// A series must have at least one observation and no negative values.
func NewMonthlySeries(label string, values []decimal.Decimal) (MonthlySeries, error) {
	if len(values) == 0 {
		return MonthlySeries{}, ErrEmptySeries
	}
	for i, v := range values {
		if v.IsNegative() {
			return MonthlySeries{}, fmt.Errorf("series %q value at index %d is negative: %w", label, i, ErrNegativeValue)
		}
	}
	copied := make([]decimal.Decimal, len(values))
	copy(copied, values)
	return MonthlySeries{Label: label, Values: copied}, nil
}

// Len returns the number of observations.
func (s MonthlySeries) Len() int {
	return len(s.Values)
}

// First returns the oldest observation.
func (s MonthlySeries) First() decimal.Decimal {
	if len(s.Values) == 0 {
		return decimal.Zero
	}
	return s.Values[0]
}

// Last returns the newest observation.
func (s MonthlySeries) Last() decimal.Decimal {
	if len(s.Values) == 0 {
		return decimal.Zero
	}
	return s.Values[len(s.Values)-1]
}

// Mean returns the arithmetic mean of the observations, or zero for an
// empty series.
func (s MonthlySeries) Mean() decimal.Decimal {
	if len(s.Values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range s.Values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(s.Values))))
}

// Float64s returns the observations as float64 for regression math.
// Precision loss here is acceptable: the floats feed slope and R²
// estimates, never stored amounts.
func (s MonthlySeries) Float64s() []float64 {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		out[i] = v.InexactFloat64()
	}
	return out
}

var (
	// ErrEmptySeries indicates a series with no observations where at
	// least one is required.
	ErrEmptySeries = errors.New("series must have at least one observation")

	// ErrNegativeValue indicates a negative monthly observation.
	ErrNegativeValue = errors.New("series values must be non-negative")
)
