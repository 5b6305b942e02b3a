package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetDepreciationSummaries returns one row per asset that has a purchase
// price, with its accumulated depreciation and current book value. Assets
// with no ledger entries report zero accumulated depreciation and a book
// value equal to the purchase price.
func (r *PgxReportingRepository) GetDepreciationSummaries(ctx context.Context) ([]dto.DepreciationSummaryRow, error) {
	query := `
		SELECT
			a.asset_id,
			a.name,
			c.name AS category_name,
			a.purchase_price,
			COALESCE(d.accumulated_depreciation, 0) AS accumulated_depreciation,
			COALESCE(a.current_value, a.purchase_price) AS book_value
		FROM assets a
		LEFT JOIN categories c ON c.category_id = a.category_id
		LEFT JOIN LATERAL (
			SELECT accumulated_depreciation
			FROM depreciation_entries
			WHERE asset_id = a.asset_id
			ORDER BY period_end DESC, created_at DESC
			LIMIT 1
		) d ON true
		WHERE a.purchase_price IS NOT NULL
		ORDER BY a.name ASC, a.asset_id ASC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query depreciation summaries: %w", err)
	}
	defer rows.Close()

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (dto.DepreciationSummaryRow, error) {
		var summary dto.DepreciationSummaryRow
		err := row.Scan(
			&summary.AssetID,
			&summary.AssetName,
			&summary.CategoryName,
			&summary.PurchasePrice,
			&summary.AccumulatedDepreciation,
			&summary.BookValue,
		)
		return summary, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan depreciation summaries: %w", err)
	}
	return summaries, nil
}

// GetAssetCountsByStatus returns the number of assets in each lifecycle
// status.
func (r *PgxReportingRepository) GetAssetCountsByStatus(ctx context.Context) ([]dto.AssetStatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM assets
		GROUP BY status
		ORDER BY status ASC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset status counts: %w", err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (dto.AssetStatusCount, error) {
		var count dto.AssetStatusCount
		err := row.Scan(&count.Status, &count.Count)
		return count, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan asset status counts: %w", err)
	}
	return counts, nil
}
