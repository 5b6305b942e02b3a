package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	"github.com/hecate-codex/asset_mgmt_app/internal/models"
	"github.com/hecate-codex/asset_mgmt_app/internal/utils/mapping"
	"github.com/hecate-codex/asset_mgmt_app/internal/utils/pagination"
)

const assetColumns = `asset_id, name, asset_tag, serial_number, description, status, purchase_date, purchase_price, current_value, warranty_expiry, category_id, location_id, department_id, vendor_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryWithTx {
	return &PgxAssetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AssetRepositoryWithTx = (*PgxAssetRepository)(nil)

func scanAsset(row pgx.Row) (models.Asset, error) {
	var asset models.Asset
	err := row.Scan(
		&asset.AssetID,
		&asset.Name,
		&asset.AssetTag,
		&asset.SerialNumber,
		&asset.Description,
		&asset.Status,
		&asset.PurchaseDate,
		&asset.PurchasePrice,
		&asset.CurrentValue,
		&asset.WarrantyExpiry,
		&asset.CategoryID,
		&asset.LocationID,
		&asset.DepartmentID,
		&asset.VendorID,
		&asset.CreatedAt,
		&asset.CreatedBy,
		&asset.LastUpdatedAt,
		&asset.LastUpdatedBy,
	)
	return asset, err
}

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	modelAsset := mapping.ToModelAsset(asset)

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelAsset.AssetID,
		modelAsset.Name,
		modelAsset.AssetTag,
		modelAsset.SerialNumber,
		modelAsset.Description,
		modelAsset.Status,
		modelAsset.PurchaseDate,
		modelAsset.PurchasePrice,
		modelAsset.CurrentValue,
		modelAsset.WarrantyExpiry,
		modelAsset.CategoryID,
		modelAsset.LocationID,
		modelAsset.DepartmentID,
		modelAsset.VendorID,
		modelAsset.CreatedAt,
		modelAsset.CreatedBy,
		modelAsset.LastUpdatedAt,
		modelAsset.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("asset tag %s: %w", modelAsset.AssetTag, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save asset %s: %w", modelAsset.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves an asset by its id.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`

	modelAsset, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("asset %s not found", assetID))
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}

	domainAsset := mapping.ToDomainAsset(modelAsset)
	return &domainAsset, nil
}

// FindAssetWithCategory retrieves an asset together with its category policy.
func (r *PgxAssetRepository) FindAssetWithCategory(ctx context.Context, assetID string) (*domain.Asset, error) {
	asset, err := r.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.CategoryID == nil {
		return asset, nil
	}

	query := `
		SELECT category_id, name, description, depreciation_method, useful_life_years, salvage_value_percent, parent_category_id, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE category_id = $1;
	`
	var modelCategory models.Category
	err = r.Pool.QueryRow(ctx, query, *asset.CategoryID).Scan(
		&modelCategory.CategoryID,
		&modelCategory.Name,
		&modelCategory.Description,
		&modelCategory.DepreciationMethod,
		&modelCategory.UsefulLifeYears,
		&modelCategory.SalvageValuePercent,
		&modelCategory.ParentCategoryID,
		&modelCategory.CreatedAt,
		&modelCategory.CreatedBy,
		&modelCategory.LastUpdatedAt,
		&modelCategory.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Dangling category reference; the asset is still usable.
			return asset, nil
		}
		return nil, fmt.Errorf("failed to load category for asset %s: %w", assetID, err)
	}

	domainCategory := mapping.ToDomainCategory(modelCategory)
	asset.Category = &domainCategory
	return asset, nil
}

// ListAssets retrieves a filtered page of assets using token-based pagination.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, filter portsrepo.AssetFilter, limit int, nextToken *string) ([]domain.Asset, *string, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	addCondition := func(column string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.Status != nil {
		addCondition("status", string(*filter.Status))
	}
	if filter.CategoryID != nil {
		addCondition("category_id", *filter.CategoryID)
	}
	if filter.LocationID != nil {
		addCondition("location_id", *filter.LocationID)
	}
	if filter.DepartmentID != nil {
		addCondition("department_id", *filter.DepartmentID)
	}

	if nextToken != nil && *nextToken != "" {
		tokenTime, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		conditions = append(conditions, fmt.Sprintf("(created_at, asset_id) < ($%d, $%d)", argPos, argPos+1))
		args = append(args, tokenTime, tokenID)
		argPos += 2
	}

	query := `SELECT ` + assetColumns + ` FROM assets`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY created_at DESC, asset_id DESC LIMIT $%d", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	modelAssets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Asset, error) {
		return scanAsset(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan assets: %w", err)
	}

	var token *string
	if len(modelAssets) > limit {
		modelAssets = modelAssets[:limit]
		last := modelAssets[len(modelAssets)-1]
		encoded := pagination.EncodeToken(last.CreatedAt, last.AssetID)
		token = &encoded
	}

	return mapping.ToDomainAssetSlice(modelAssets), token, nil
}

// UpdateAsset updates the mutable fields of an asset.
func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	modelAsset := mapping.ToModelAsset(asset)

	query := `
		UPDATE assets SET
			name = $2,
			serial_number = $3,
			description = $4,
			status = $5,
			purchase_date = $6,
			purchase_price = $7,
			current_value = $8,
			warranty_expiry = $9,
			category_id = $10,
			location_id = $11,
			department_id = $12,
			vendor_id = $13,
			last_updated_at = $14,
			last_updated_by = $15
		WHERE asset_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelAsset.AssetID,
		modelAsset.Name,
		modelAsset.SerialNumber,
		modelAsset.Description,
		modelAsset.Status,
		modelAsset.PurchaseDate,
		modelAsset.PurchasePrice,
		modelAsset.CurrentValue,
		modelAsset.WarrantyExpiry,
		modelAsset.CategoryID,
		modelAsset.LocationID,
		modelAsset.DepartmentID,
		modelAsset.VendorID,
		modelAsset.LastUpdatedAt,
		modelAsset.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", modelAsset.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("asset %s not found", modelAsset.AssetID))
	}
	return nil
}

// DeleteAsset removes an asset.
func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("asset %s not found", assetID))
	}
	return nil
}

// lockAssetStatus locks the asset row and returns its current status.
func lockAssetStatus(ctx context.Context, tx pgx.Tx, assetID string) (models.AssetStatus, error) {
	var status models.AssetStatus
	err := tx.QueryRow(ctx, `SELECT status FROM assets WHERE asset_id = $1 FOR UPDATE;`, assetID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundError(fmt.Sprintf("asset %s not found", assetID))
		}
		return "", fmt.Errorf("failed to lock asset %s: %w", assetID, err)
	}
	return status, nil
}

// AssignAsset opens the assignment and moves the asset to ASSIGNED in one
// transaction. The status is re-checked under the row lock so concurrent
// assignments serialize and exactly one wins.
func (r *PgxAssetRepository) AssignAsset(ctx context.Context, assignment domain.Assignment, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	status, err := lockAssetStatus(ctx, tx, assignment.AssetID)
	if err != nil {
		return err
	}
	switch status {
	case models.Assigned:
		return fmt.Errorf("asset %s: %w", assignment.AssetID, apperrors.ErrConflict)
	case models.Available, models.InMaintenance:
		// assignable
	default:
		return fmt.Errorf("asset %s is %s: %w", assignment.AssetID, status, apperrors.ErrInvalidState)
	}

	modelAssignment := mapping.ToModelAssignment(assignment)
	_, err = tx.Exec(ctx, `
		INSERT INTO assignments (assignment_id, asset_id, assignee_id, assignee_name, assigned_at, returned_at, notes)
		VALUES ($1, $2, $3, $4, $5, NULL, $6);
	`,
		modelAssignment.AssignmentID,
		modelAssignment.AssetID,
		modelAssignment.AssigneeID,
		modelAssignment.AssigneeName,
		modelAssignment.AssignedAt,
		modelAssignment.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Partial unique index on open assignments; a racing insert got here first.
			return fmt.Errorf("asset %s: %w", assignment.AssetID, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to insert assignment for asset %s: %w", assignment.AssetID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE assets SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE asset_id = $1;
	`, assignment.AssetID, models.Assigned, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark asset %s assigned: %w", assignment.AssetID, err)
	}

	return r.Commit(ctx, tx)
}

// ReturnAsset closes the open assignment and moves the asset back to
// AVAILABLE in one transaction. When returnNotes is non-nil it replaces the
// assignment's notes; a missing open assignment only skips the assignment
// update.
func (r *PgxAssetRepository) ReturnAsset(ctx context.Context, assetID string, returnNotes *string, returnedAt time.Time, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	status, err := lockAssetStatus(ctx, tx, assetID)
	if err != nil {
		return err
	}
	if status != models.Assigned {
		return fmt.Errorf("asset %s is %s: %w", assetID, status, apperrors.ErrInvalidState)
	}

	_, err = tx.Exec(ctx, `
		UPDATE assignments
		SET returned_at = $2, notes = COALESCE($3, notes)
		WHERE asset_id = $1 AND returned_at IS NULL;
	`, assetID, returnedAt, returnNotes)
	if err != nil {
		return fmt.Errorf("failed to close assignment for asset %s: %w", assetID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE assets SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE asset_id = $1;
	`, assetID, models.Available, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark asset %s available: %w", assetID, err)
	}

	return r.Commit(ctx, tx)
}

const assignmentColumns = `assignment_id, asset_id, assignee_id, assignee_name, assigned_at, returned_at, notes`

func scanAssignment(row pgx.Row) (models.Assignment, error) {
	var assignment models.Assignment
	err := row.Scan(
		&assignment.AssignmentID,
		&assignment.AssetID,
		&assignment.AssigneeID,
		&assignment.AssigneeName,
		&assignment.AssignedAt,
		&assignment.ReturnedAt,
		&assignment.Notes,
	)
	return assignment, err
}

// FindOpenAssignment retrieves the asset's open assignment, if any.
func (r *PgxAssetRepository) FindOpenAssignment(ctx context.Context, assetID string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE asset_id = $1 AND returned_at IS NULL;`

	modelAssignment, err := scanAssignment(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no open assignment for asset %s", assetID))
		}
		return nil, fmt.Errorf("failed to find open assignment for asset %s: %w", assetID, err)
	}

	domainAssignment := mapping.ToDomainAssignment(modelAssignment)
	return &domainAssignment, nil
}

// ListAssignmentsByAsset retrieves the asset's assignment history, most
// recent first.
func (r *PgxAssetRepository) ListAssignmentsByAsset(ctx context.Context, assetID string) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE asset_id = $1 ORDER BY assigned_at DESC;`

	rows, err := r.Pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for asset %s: %w", assetID, err)
	}
	defer rows.Close()

	modelAssignments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Assignment, error) {
		return scanAssignment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan assignments for asset %s: %w", assetID, err)
	}

	return mapping.ToDomainAssignmentSlice(modelAssignments), nil
}
