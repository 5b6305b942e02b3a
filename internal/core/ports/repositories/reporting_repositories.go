package repositories

import (
	"context"

	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// ReportingRepositoryFacade defines aggregate queries used by reports.
type ReportingRepositoryFacade interface {
	// GetDepreciationSummaries returns one row per depreciating asset with
	// its purchase price, accumulated depreciation and current book value.
	GetDepreciationSummaries(ctx context.Context) ([]dto.DepreciationSummaryRow, error)

	// GetAssetCountsByStatus returns the number of assets in each lifecycle
	// status.
	GetAssetCountsByStatus(ctx context.Context) ([]dto.AssetStatusCount, error)
}
