package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/fincast-backend/internal/domain"
)

// aggregateRepository implements domain.AggregateProvider over the
// entries and transactions tables owned by the storage collaborator.
type aggregateRepository struct {
	db *DB
}

// NewAggregateRepository creates a new aggregate provider
func NewAggregateRepository(db *DB) domain.AggregateProvider {
	return &aggregateRepository{db: db}
}

// MonthlyTotals returns per-category monthly totals for the user over
// [from, to], ordered oldest month first
func (r *aggregateRepository) MonthlyTotals(ctx context.Context, userID uuid.UUID, from, to domain.Month) ([]domain.MonthlyAggregate, error) {
	query := `
		SELECT e.year, e.month, c.id, c.name, c.category_type,
		       COALESCE(SUM(e.planned_amount), 0),
		       COALESCE(SUM(e.actual_amount), 0)
		FROM monthly_entries e
		JOIN categories c ON c.id = e.category_id
		WHERE e.user_id = $1
		  AND (e.year * 12 + e.month) BETWEEN $2 AND $3
		GROUP BY e.year, e.month, c.id, c.name, c.category_type
		ORDER BY e.year, e.month, c.name
	`

	fromKey := from.Year*12 + int(from.Month)
	toKey := to.Year*12 + int(to.Month)

	rows, err := r.db.QueryContext(ctx, query, userID, fromKey, toKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	var aggregates []domain.MonthlyAggregate
	for rows.Next() {
		var (
			year, month           int
			agg                   domain.MonthlyAggregate
			plannedStr, actualStr string
		)
		if err := rows.Scan(&year, &month, &agg.CategoryID, &agg.CategoryName, &agg.CategoryType, &plannedStr, &actualStr); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		agg.Month = domain.Month{Year: year, Month: time.Month(month)}

		planned, err := decimal.NewFromString(plannedStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse planned amount: %w", err)
		}
		actual, err := decimal.NewFromString(actualStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse actual amount: %w", err)
		}
		agg.Planned = planned
		agg.Actual = actual
		aggregates = append(aggregates, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly totals: %w", err)
	}

	return aggregates, nil
}

// Transactions returns raw transaction records for the user over
// [from, to], ordered by date ascending
func (r *aggregateRepository) Transactions(ctx context.Context, userID uuid.UUID, from, to domain.Month) ([]domain.TransactionRecord, error) {
	query := `
		SELECT description, amount, transaction_date, category_id
		FROM transactions
		WHERE user_id = $1
		  AND transaction_date >= $2
		  AND transaction_date < $3
		ORDER BY transaction_date ASC
	`

	fromDate := time.Date(from.Year, from.Month, 1, 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year, to.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	rows, err := r.db.QueryContext(ctx, query, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		var (
			record     domain.TransactionRecord
			amountStr  string
			categoryID sql.NullString
		)
		if err := rows.Scan(&record.Description, &amountStr, &record.Date, &categoryID); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction amount: %w", err)
		}
		record.Amount = amount

		if categoryID.Valid {
			hint, err := uuid.Parse(categoryID.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse category hint: %w", err)
			}
			record.CategoryHint = &hint
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return records, nil
}
