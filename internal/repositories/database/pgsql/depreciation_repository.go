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
)

const depreciationColumns = `entry_id, asset_id, period_start, period_end, depreciation_amount, accumulated_depreciation, book_value, created_at, created_by, last_updated_at, last_updated_by`

type PgxDepreciationRepository struct {
	BaseRepository
}

// newPgxDepreciationRepository creates a new repository for the depreciation ledger.
func newPgxDepreciationRepository(pool *pgxpool.Pool) portsrepo.DepreciationRepositoryFacade {
	return &PgxDepreciationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DepreciationRepositoryFacade = (*PgxDepreciationRepository)(nil)

func scanDepreciationEntry(row pgx.Row) (models.DepreciationEntry, error) {
	var entry models.DepreciationEntry
	err := row.Scan(
		&entry.EntryID,
		&entry.AssetID,
		&entry.PeriodStart,
		&entry.PeriodEnd,
		&entry.DepreciationAmount,
		&entry.AccumulatedDepreciation,
		&entry.BookValue,
		&entry.CreatedAt,
		&entry.CreatedBy,
		&entry.LastUpdatedAt,
		&entry.LastUpdatedBy,
	)
	return entry, err
}

// FindLatestEntryByAssetID retrieves the asset's most recent ledger entry by
// period end.
func (r *PgxDepreciationRepository) FindLatestEntryByAssetID(ctx context.Context, assetID string) (*domain.DepreciationEntry, error) {
	query := `
		SELECT ` + depreciationColumns + `
		FROM depreciation_entries
		WHERE asset_id = $1
		ORDER BY period_end DESC, created_at DESC
		LIMIT 1;
	`

	modelEntry, err := scanDepreciationEntry(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no ledger entries for asset %s", assetID))
		}
		return nil, fmt.Errorf("failed to find latest ledger entry for asset %s: %w", assetID, err)
	}

	domainEntry := mapping.ToDomainDepreciationEntry(modelEntry)
	return &domainEntry, nil
}

// ListEntriesByAssetID retrieves the asset's ledger, most recent period first.
func (r *PgxDepreciationRepository) ListEntriesByAssetID(ctx context.Context, assetID string) ([]domain.DepreciationEntry, error) {
	query := `
		SELECT ` + depreciationColumns + `
		FROM depreciation_entries
		WHERE asset_id = $1
		ORDER BY period_end DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for asset %s: %w", assetID, err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DepreciationEntry, error) {
		return scanDepreciationEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries for asset %s: %w", assetID, err)
	}

	return mapping.ToDomainDepreciationEntrySlice(modelEntries), nil
}

// SaveEntry appends a ledger entry and moves the asset's cached current_value
// to the entry's book value in one transaction. The asset row lock serializes
// concurrent runs so the read-compute-write cycle never interleaves.
func (r *PgxDepreciationRepository) SaveEntry(ctx context.Context, entry domain.DepreciationEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if _, err := lockAssetStatus(ctx, tx, entry.AssetID); err != nil {
		return err
	}

	modelEntry := mapping.ToModelDepreciationEntry(entry)
	_, err = tx.Exec(ctx, `
		INSERT INTO depreciation_entries (`+depreciationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		modelEntry.EntryID,
		modelEntry.AssetID,
		modelEntry.PeriodStart,
		modelEntry.PeriodEnd,
		modelEntry.DepreciationAmount,
		modelEntry.AccumulatedDepreciation,
		modelEntry.BookValue,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry %s: %w", modelEntry.EntryID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE assets SET current_value = $2, last_updated_at = $3, last_updated_by = $4 WHERE asset_id = $1;
	`, modelEntry.AssetID, modelEntry.BookValue, modelEntry.LastUpdatedAt, modelEntry.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update current value for asset %s: %w", modelEntry.AssetID, err)
	}

	return r.Commit(ctx, tx)
}
