package repositories

import (
	"context"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves a paginated list of categories using
	// token-based pagination.
	ListCategories(ctx context.Context, limit int, nextToken *string) ([]domain.Category, *string, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates the mutable fields of a category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
