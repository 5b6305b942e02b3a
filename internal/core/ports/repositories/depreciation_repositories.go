package repositories

import (
	"context"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// DepreciationReader defines read operations for the depreciation ledger.
type DepreciationReader interface {
	// FindLatestEntryByAssetID retrieves the asset's most recent ledger entry
	// by period_end, or ErrNotFound when the ledger is empty.
	FindLatestEntryByAssetID(ctx context.Context, assetID string) (*domain.DepreciationEntry, error)

	// ListEntriesByAssetID retrieves the asset's full ledger, most recent
	// period first.
	ListEntriesByAssetID(ctx context.Context, assetID string) ([]domain.DepreciationEntry, error)
}

// DepreciationWriter defines write operations for the depreciation ledger.
// Entries are append-only; there are no update or delete operations.
type DepreciationWriter interface {
	// SaveEntry appends a ledger entry and updates the asset's cached
	// current_value to the entry's book value within a single database
	// transaction. The asset row is locked for the duration of the write.
	SaveEntry(ctx context.Context, entry domain.DepreciationEntry) error
}

// DepreciationRepositoryFacade combines ledger read and write interfaces.
type DepreciationRepositoryFacade interface {
	DepreciationReader
	DepreciationWriter
}
