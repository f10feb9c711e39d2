package domain

import (
	"context"

	"github.com/google/uuid"
)

// AggregateProvider supplies the monthly totals and raw transactions
// the engine computes over. The engine never queries storage directly;
// every analytics function reads an immutable snapshot fetched through
// this interface before computation starts.
type AggregateProvider interface {
	// MonthlyTotals returns per-category monthly totals for the user
	// over [from, to], ordered oldest month first.
	MonthlyTotals(ctx context.Context, userID uuid.UUID, from, to Month) ([]MonthlyAggregate, error)

	// Transactions returns raw transaction records for the user over
	// [from, to], ordered by date ascending.
	Transactions(ctx context.Context, userID uuid.UUID, from, to Month) ([]TransactionRecord, error)
}

// PatternRepository stores learned classification patterns. It is the
// only mutable store the engine owns. IncrementHit must be atomic with
// respect to concurrent calls for the same key: two concurrent
// increments both count (no read-modify-write from application memory).
type PatternRepository interface {
	// GetBySignature returns all learned patterns for a signature,
	// ordered by hit count descending.
	GetBySignature(ctx context.Context, signature string) ([]LearnedPattern, error)

	// IncrementHit atomically increments the hit count for the
	// (signature, category) pair, creating it at count 1 if absent.
	IncrementHit(ctx context.Context, signature string, categoryID uuid.UUID) error
}

// CategoryRepository reads categories owned by the storage
// collaborator.
type CategoryRepository interface {
	// GetByID retrieves a category by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// List retrieves all categories.
	List(ctx context.Context) ([]*Category, error)
}
