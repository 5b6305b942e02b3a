package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	"github.com/hecate-codex/asset_mgmt_app/internal/models"
	"github.com/hecate-codex/asset_mgmt_app/internal/utils/mapping"
	"github.com/hecate-codex/asset_mgmt_app/internal/utils/pagination"
)

const categoryColumns = `category_id, name, description, depreciation_method, useful_life_years, salvage_value_percent, parent_category_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (models.Category, error) {
	var category models.Category
	err := row.Scan(
		&category.CategoryID,
		&category.Name,
		&category.Description,
		&category.DepreciationMethod,
		&category.UsefulLifeYears,
		&category.SalvageValuePercent,
		&category.ParentCategoryID,
		&category.CreatedAt,
		&category.CreatedBy,
		&category.LastUpdatedAt,
		&category.LastUpdatedBy,
	)
	return category, err
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCategory := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCategory.CategoryID,
		modelCategory.Name,
		modelCategory.Description,
		modelCategory.DepreciationMethod,
		modelCategory.UsefulLifeYears,
		modelCategory.SalvageValuePercent,
		modelCategory.ParentCategoryID,
		modelCategory.CreatedAt,
		modelCategory.CreatedBy,
		modelCategory.LastUpdatedAt,
		modelCategory.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category %s: %w", modelCategory.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save category %s: %w", modelCategory.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its id.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	modelCategory, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("category %s not found", categoryID))
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	domainCategory := mapping.ToDomainCategory(modelCategory)
	return &domainCategory, nil
}

// ListCategories retrieves a page of categories using token-based pagination.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, limit int, nextToken *string) ([]domain.Category, *string, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	args := []interface{}{}
	argPos := 1

	if nextToken != nil && *nextToken != "" {
		tokenTime, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" WHERE (created_at, category_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, tokenTime, tokenID)
		argPos += 2
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, category_id DESC LIMIT $%d", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		return scanCategory(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	var token *string
	if len(modelCategories) > limit {
		modelCategories = modelCategories[:limit]
		last := modelCategories[len(modelCategories)-1]
		encoded := pagination.EncodeToken(last.CreatedAt, last.CategoryID)
		token = &encoded
	}

	return mapping.ToDomainCategorySlice(modelCategories), token, nil
}

// UpdateCategory updates the mutable fields of a category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCategory := mapping.ToModelCategory(category)

	query := `
		UPDATE categories SET
			name = $2,
			description = $3,
			depreciation_method = $4,
			useful_life_years = $5,
			salvage_value_percent = $6,
			parent_category_id = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE category_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelCategory.CategoryID,
		modelCategory.Name,
		modelCategory.Description,
		modelCategory.DepreciationMethod,
		modelCategory.UsefulLifeYears,
		modelCategory.SalvageValuePercent,
		modelCategory.ParentCategoryID,
		modelCategory.LastUpdatedAt,
		modelCategory.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", modelCategory.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("category %s not found", modelCategory.CategoryID))
	}
	return nil
}

// DeleteCategory removes a category.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("category %s not found", categoryID))
	}
	return nil
}
