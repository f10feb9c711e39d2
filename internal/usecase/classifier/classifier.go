package classifier

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/fincast-backend/internal/domain"
)

const (
	// maxSuggestions caps the returned ranking.
	maxSuggestions = 3

	// learnedBaseConfidence is the floor for a suggestion that comes
	// only from the learned pattern store, before the hit-count boost.
	learnedBaseConfidence = 55.0

	// fallbackConfidence is used for the amount-sign guess when
	// neither rules nor patterns match.
	fallbackConfidence = 30.0

	// patternSmoothing dampens the hit-count boost: confidence
	// approaches 100 as hits grow but never reaches it from the boost
	// alone.
	patternSmoothing = 3.0

	// signatureTokenLimit bounds how many leading tokens of a
	// description form its signature.
	signatureTokenLimit = 4
)

// Service assigns categories to raw transactions by combining fixed
// keyword rules with the learned pattern store, and records user
// confirmations back into the store.
type Service struct {
	Patterns   domain.PatternRepository
	Categories domain.CategoryRepository
}

// NewService creates a new classifier Service instance.
func NewService(patterns domain.PatternRepository, categories domain.CategoryRepository) *Service {
	return &Service{Patterns: patterns, Categories: categories}
}

// Classify returns up to three ranked category suggestions for a raw
// transaction. An explicit known category short-circuits to a single
// suggestion at confidence 100.
func (s *Service) Classify(ctx context.Context, description string, amount decimal.Decimal, explicitCategory *uuid.UUID) ([]domain.ClassificationSuggestion, error) {
	if explicitCategory != nil {
		cat, err := s.Categories.GetByID(ctx, *explicitCategory)
		if err == nil {
			return []domain.ClassificationSuggestion{{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				CategoryType: cat.Type,
				Confidence:   100,
			}}, nil
		}
		// Unknown hint: fall through to the regular pipeline.
	}

	categories, err := s.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	byName := make(map[string]*domain.Category, len(categories))
	byID := make(map[uuid.UUID]*domain.Category, len(categories))
	for _, cat := range categories {
		byName[strings.ToLower(cat.Name)] = cat
		byID[cat.ID] = cat
	}

	// Best suggestion per category name, keyed lowercased.
	best := make(map[string]domain.ClassificationSuggestion)
	consider := func(sg domain.ClassificationSuggestion) {
		key := strings.ToLower(sg.CategoryName)
		if existing, ok := best[key]; !ok || sg.Confidence > existing.Confidence {
			best[key] = sg
		}
	}

	lowered := strings.ToLower(description)
	for _, rule := range keywordRules {
		if !strings.Contains(lowered, rule.Keyword) {
			continue
		}
		sg := domain.ClassificationSuggestion{
			CategoryName: rule.CategoryName,
			CategoryType: rule.CategoryType,
			Confidence:   rule.BaseConfidence,
		}
		if cat, ok := byName[strings.ToLower(rule.CategoryName)]; ok {
			sg.CategoryID = cat.ID
		}
		consider(sg)
	}

	signature := NormalizeSignature(description)
	if signature != "" {
		patterns, err := s.Patterns.GetBySignature(ctx, signature)
		if err != nil {
			return nil, fmt.Errorf("failed to load learned patterns: %w", err)
		}
		for _, p := range patterns {
			cat, ok := byID[p.CategoryID]
			if !ok {
				continue
			}
			base := learnedBaseConfidence
			if existing, ok := best[strings.ToLower(cat.Name)]; ok && existing.Confidence > base {
				base = existing.Confidence
			}
			consider(domain.ClassificationSuggestion{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				CategoryType: cat.Type,
				Confidence:   boostConfidence(base, p.HitCount),
			})
		}
	}

	if len(best) == 0 {
		// Amount sign is the only remaining signal. Positive amounts
		// lean income, negative lean expense; investment is never
		// guessed without an explicit signal.
		guessType := domain.CategoryTypeExpense
		if amount.IsPositive() {
			guessType = domain.CategoryTypeIncome
		}
		sg := domain.ClassificationSuggestion{
			CategoryName: "Uncategorized",
			CategoryType: guessType,
			Confidence:   fallbackConfidence,
		}
		for _, cat := range categories {
			if cat.Type == guessType {
				sg.CategoryID = cat.ID
				sg.CategoryName = cat.Name
				break
			}
		}
		return []domain.ClassificationSuggestion{sg}, nil
	}

	ranked := make([]domain.ClassificationSuggestion, 0, len(best))
	for _, sg := range best {
		ranked = append(ranked, sg)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].CategoryName < ranked[j].CategoryName
	})
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	return ranked, nil
}

// Learn records a confirmed (description, category) association. The
// increment is delegated to the repository, which must apply it
// atomically; concurrent confirmations for the same signature are all
// counted.
func (s *Service) Learn(ctx context.Context, description string, amount decimal.Decimal, categoryID uuid.UUID, source domain.LearnSource) error {
	if _, err := s.Categories.GetByID(ctx, categoryID); err != nil {
		return fmt.Errorf("cannot learn pattern for unknown category %s: %w", categoryID, err)
	}

	signature := NormalizeSignature(description)
	if signature == "" {
		// Nothing to key on; silently skipping would hide data-quality
		// problems from the caller.
		return fmt.Errorf("description %q normalizes to an empty signature: %w", description, domain.ErrInvalidConfig)
	}

	if err := s.Patterns.IncrementHit(ctx, signature, categoryID); err != nil {
		return fmt.Errorf("failed to record learned pattern (source %s): %w", source, err)
	}
	return nil
}

// boostConfidence raises a base confidence toward 100 as confirmations
// accumulate. Monotonically increasing in hits, bounded at 100.
func boostConfidence(base float64, hits int) float64 {
	if hits <= 0 {
		return base
	}
	boosted := base + (100-base)*float64(hits)/(float64(hits)+patternSmoothing)
	if boosted > 100 {
		return 100
	}
	return boosted
}

// NormalizeSignature reduces a free-form description to a stable
// lookup key: lowercase, letters and spaces only, collapsed
// whitespace, truncated to the leading tokens. Reference numbers and
// dates in bank descriptions vary per transaction and must not split
// otherwise-identical patterns.
func NormalizeSignature(description string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(description) {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	tokens := strings.Fields(b.String())
	if len(tokens) > signatureTokenLimit {
		tokens = tokens[:signatureTokenLimit]
	}
	return strings.Join(tokens, " ")
}
