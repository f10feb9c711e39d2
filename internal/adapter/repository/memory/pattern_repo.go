package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fincast/fincast-backend/internal/domain"
)

type patternKey struct {
	signature  string
	categoryID uuid.UUID
}

// PatternRepository is an in-memory domain.PatternRepository for tests
// and development. The mutex makes IncrementHit atomic with respect to
// concurrent callers, matching the store's no-lost-updates contract.
type PatternRepository struct {
	mu       sync.Mutex
	patterns map[patternKey]*domain.LearnedPattern
}

// NewPatternRepository creates an empty in-memory pattern store.
func NewPatternRepository() *PatternRepository {
	return &PatternRepository{patterns: make(map[patternKey]*domain.LearnedPattern)}
}

// GetBySignature returns all learned patterns for a signature, ordered
// by hit count descending.
func (r *PatternRepository) GetBySignature(ctx context.Context, signature string) ([]domain.LearnedPattern, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var patterns []domain.LearnedPattern
	for key, p := range r.patterns {
		if key.signature == signature {
			patterns = append(patterns, *p)
		}
	}
	sort.Slice(patterns, func(i, j int) bool {
		return patterns[i].HitCount > patterns[j].HitCount
	})
	return patterns, nil
}

// IncrementHit atomically increments the hit count for the
// (signature, category) pair, creating it at count 1 if absent.
func (r *PatternRepository) IncrementHit(ctx context.Context, signature string, categoryID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := patternKey{signature: signature, categoryID: categoryID}
	if p, ok := r.patterns[key]; ok {
		p.HitCount++
		p.LastSeenAt = time.Now()
		return nil
	}
	r.patterns[key] = &domain.LearnedPattern{
		Signature:  signature,
		CategoryID: categoryID,
		HitCount:   1,
		LastSeenAt: time.Now(),
	}
	return nil
}
