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

const vendorColumns = `vendor_id, name, contact_name, contact_email, contact_phone, website, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxVendorRepository struct {
	BaseRepository
}

// newPgxVendorRepository creates a new repository for vendor data.
func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func scanVendor(row pgx.Row) (models.Vendor, error) {
	var vendor models.Vendor
	err := row.Scan(
		&vendor.VendorID,
		&vendor.Name,
		&vendor.ContactName,
		&vendor.ContactEmail,
		&vendor.ContactPhone,
		&vendor.Website,
		&vendor.Notes,
		&vendor.CreatedAt,
		&vendor.CreatedBy,
		&vendor.LastUpdatedAt,
		&vendor.LastUpdatedBy,
	)
	return vendor, err
}

// SaveVendor inserts a new vendor.
func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	modelVendor := mapping.ToModelVendor(vendor)

	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelVendor.VendorID,
		modelVendor.Name,
		modelVendor.ContactName,
		modelVendor.ContactEmail,
		modelVendor.ContactPhone,
		modelVendor.Website,
		modelVendor.Notes,
		modelVendor.CreatedAt,
		modelVendor.CreatedBy,
		modelVendor.LastUpdatedAt,
		modelVendor.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vendor %s: %w", modelVendor.VendorID, err)
	}
	return nil
}

// FindVendorByID retrieves a vendor by its id.
func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1;`

	modelVendor, err := scanVendor(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("vendor %s not found", vendorID))
		}
		return nil, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}

	domainVendor := mapping.ToDomainVendor(modelVendor)
	return &domainVendor, nil
}

// ListVendors retrieves a page of vendors using token-based pagination.
func (r *PgxVendorRepository) ListVendors(ctx context.Context, limit int, nextToken *string) ([]domain.Vendor, *string, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors`
	args := []interface{}{}
	argPos := 1

	if nextToken != nil && *nextToken != "" {
		tokenTime, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" WHERE (created_at, vendor_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, tokenTime, tokenID)
		argPos += 2
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, vendor_id DESC LIMIT $%d", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	modelVendors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Vendor, error) {
		return scanVendor(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan vendors: %w", err)
	}

	var token *string
	if len(modelVendors) > limit {
		modelVendors = modelVendors[:limit]
		last := modelVendors[len(modelVendors)-1]
		encoded := pagination.EncodeToken(last.CreatedAt, last.VendorID)
		token = &encoded
	}

	return mapping.ToDomainVendorSlice(modelVendors), token, nil
}

// UpdateVendor updates the mutable fields of a vendor.
func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	modelVendor := mapping.ToModelVendor(vendor)

	query := `
		UPDATE vendors SET
			name = $2,
			contact_name = $3,
			contact_email = $4,
			contact_phone = $5,
			website = $6,
			notes = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE vendor_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelVendor.VendorID,
		modelVendor.Name,
		modelVendor.ContactName,
		modelVendor.ContactEmail,
		modelVendor.ContactPhone,
		modelVendor.Website,
		modelVendor.Notes,
		modelVendor.LastUpdatedAt,
		modelVendor.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor %s: %w", modelVendor.VendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("vendor %s not found", modelVendor.VendorID))
	}
	return nil
}

// DeleteVendor removes a vendor.
func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1;`, vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor %s: %w", vendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("vendor %s not found", vendorID))
	}
	return nil
}
