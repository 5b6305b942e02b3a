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

const locationColumns = `location_id, name, description, address, parent_location_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxLocationRepository struct {
	BaseRepository
}

// newPgxLocationRepository creates a new repository for location data.
func newPgxLocationRepository(pool *pgxpool.Pool) portsrepo.LocationRepositoryFacade {
	return &PgxLocationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LocationRepositoryFacade = (*PgxLocationRepository)(nil)

func scanLocation(row pgx.Row) (models.Location, error) {
	var location models.Location
	err := row.Scan(
		&location.LocationID,
		&location.Name,
		&location.Description,
		&location.Address,
		&location.ParentLocationID,
		&location.CreatedAt,
		&location.CreatedBy,
		&location.LastUpdatedAt,
		&location.LastUpdatedBy,
	)
	return location, err
}

// SaveLocation inserts a new location.
func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	modelLocation := mapping.ToModelLocation(location)

	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelLocation.LocationID,
		modelLocation.Name,
		modelLocation.Description,
		modelLocation.Address,
		modelLocation.ParentLocationID,
		modelLocation.CreatedAt,
		modelLocation.CreatedBy,
		modelLocation.LastUpdatedAt,
		modelLocation.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save location %s: %w", modelLocation.LocationID, err)
	}
	return nil
}

// FindLocationByID retrieves a location by its id.
func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1;`

	modelLocation, err := scanLocation(r.Pool.QueryRow(ctx, query, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("location %s not found", locationID))
		}
		return nil, fmt.Errorf("failed to find location %s: %w", locationID, err)
	}

	domainLocation := mapping.ToDomainLocation(modelLocation)
	return &domainLocation, nil
}

// ListLocations retrieves a page of locations using token-based pagination.
func (r *PgxLocationRepository) ListLocations(ctx context.Context, limit int, nextToken *string) ([]domain.Location, *string, error) {
	query := `SELECT ` + locationColumns + ` FROM locations`
	args := []interface{}{}
	argPos := 1

	if nextToken != nil && *nextToken != "" {
		tokenTime, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" WHERE (created_at, location_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, tokenTime, tokenID)
		argPos += 2
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, location_id DESC LIMIT $%d", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	modelLocations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Location, error) {
		return scanLocation(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan locations: %w", err)
	}

	var token *string
	if len(modelLocations) > limit {
		modelLocations = modelLocations[:limit]
		last := modelLocations[len(modelLocations)-1]
		encoded := pagination.EncodeToken(last.CreatedAt, last.LocationID)
		token = &encoded
	}

	return mapping.ToDomainLocationSlice(modelLocations), token, nil
}

// UpdateLocation updates the mutable fields of a location.
func (r *PgxLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	modelLocation := mapping.ToModelLocation(location)

	query := `
		UPDATE locations SET
			name = $2,
			description = $3,
			address = $4,
			parent_location_id = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE location_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelLocation.LocationID,
		modelLocation.Name,
		modelLocation.Description,
		modelLocation.Address,
		modelLocation.ParentLocationID,
		modelLocation.LastUpdatedAt,
		modelLocation.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update location %s: %w", modelLocation.LocationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("location %s not found", modelLocation.LocationID))
	}
	return nil
}

// DeleteLocation removes a location.
func (r *PgxLocationRepository) DeleteLocation(ctx context.Context, locationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM locations WHERE location_id = $1;`, locationID)
	if err != nil {
		return fmt.Errorf("failed to delete location %s: %w", locationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("location %s not found", locationID))
	}
	return nil
}
