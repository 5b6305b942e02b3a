package services

import (
	"context"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// CategorySvcFacade defines the interface for category operations.
type CategorySvcFacade interface {
	// CreateCategory creates a new category with its depreciation policy.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)

	// GetCategoryByID retrieves a specific category.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves a paginated list of categories.
	ListCategories(ctx context.Context, limit int, nextToken *string) ([]domain.Category, *string, error)

	// UpdateCategory applies the non-nil fields of the request to a category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}
