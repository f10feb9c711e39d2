package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fincast/fincast-backend/internal/domain"
)

// patternRepository implements domain.PatternRepository
type patternRepository struct {
	db *DB
}

// NewPatternRepository creates a new learned-pattern repository
func NewPatternRepository(db *DB) domain.PatternRepository {
	return &patternRepository{db: db}
}

// GetBySignature returns all learned patterns for a signature, ordered
// by hit count descending
func (r *patternRepository) GetBySignature(ctx context.Context, signature string) ([]domain.LearnedPattern, error) {
	query := `
		SELECT signature, category_id, hit_count, last_seen_at
		FROM learned_patterns
		WHERE signature = $1
		ORDER BY hit_count DESC
	`

	rows, err := r.db.QueryContext(ctx, query, signature)
	if err != nil {
		return nil, fmt.Errorf("failed to query learned patterns: %w", err)
	}
	defer rows.Close()

	var patterns []domain.LearnedPattern
	for rows.Next() {
		var p domain.LearnedPattern
		if err := rows.Scan(&p.Signature, &p.CategoryID, &p.HitCount, &p.LastSeenAt); err != nil {
			return nil, fmt.Errorf("failed to scan learned pattern: %w", err)
		}
		patterns = append(patterns, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate learned patterns: %w", err)
	}

	return patterns, nil
}

// IncrementHit atomically increments the hit count for the
// (signature, category) pair, creating it at count 1 if absent.
// The upsert is a single statement so concurrent confirmations for the
// same pair never lose an increment.
func (r *patternRepository) IncrementHit(ctx context.Context, signature string, categoryID uuid.UUID) error {
	query := `
		INSERT INTO learned_patterns (signature, category_id, hit_count, last_seen_at)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (signature, category_id)
		DO UPDATE SET
			hit_count = learned_patterns.hit_count + 1,
			last_seen_at = now()
	`

	if _, err := r.db.ExecContext(ctx, query, signature, categoryID); err != nil {
		return fmt.Errorf("failed to increment pattern hit count: %w", err)
	}
	return nil
}
