package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fincast/fincast-backend/internal/domain"
)

// categoryRepository implements domain.CategoryRepository
type categoryRepository struct {
	db *DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *DB) domain.CategoryRepository {
	return &categoryRepository{db: db}
}

// GetByID retrieves a category by its ID
func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query := `
		SELECT id, name, category_type
		FROM categories
		WHERE id = $1
	`

	var category domain.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &category.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", id, domain.ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return &category, nil
}

// List retrieves all categories
func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, name, category_type
		FROM categories
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}
