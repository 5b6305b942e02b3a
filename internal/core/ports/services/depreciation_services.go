package services

import (
	"context"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// DepreciationSvcFacade defines the interface for the depreciation engine.
type DepreciationSvcFacade interface {
	// CalculateDepreciation computes the next ledger entry for the asset
	// over the requested period and persists it together with the asset's
	// updated book value. ErrFullyDepreciated is returned when the asset's
	// book value has already reached its salvage floor.
	CalculateDepreciation(ctx context.Context, assetID string, req dto.CalculateDepreciationRequest, creatorUserID string) (*domain.DepreciationEntry, error)

	// GetDepreciationHistory retrieves the asset's ledger, most recent
	// period first.
	GetDepreciationHistory(ctx context.Context, assetID string) ([]domain.DepreciationEntry, error)
}
