package services

import (
	"context"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// AssetSvcFacade defines the interface for asset lifecycle operations.
type AssetSvcFacade interface {
	// CreateAsset registers a new asset in AVAILABLE status.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest, creatorUserID string) (*domain.Asset, error)

	// GetAssetByID retrieves a specific asset.
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves a filtered, paginated list of assets.
	ListAssets(ctx context.Context, params dto.ListAssetsParams) ([]domain.Asset, *string, error)

	// UpdateAsset applies the non-nil fields of the request to an asset.
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, updaterUserID string) (*domain.Asset, error)

	// DeleteAsset removes an asset.
	DeleteAsset(ctx context.Context, assetID string) error

	// AssignAsset hands an asset to a user, opening an assignment and moving
	// the asset to ASSIGNED.
	AssignAsset(ctx context.Context, assetID string, req dto.AssignAssetRequest, updaterUserID string) (*domain.Asset, error)

	// ReturnAsset takes an assigned asset back, closing its open assignment
	// and moving the asset to AVAILABLE.
	ReturnAsset(ctx context.Context, assetID string, req dto.ReturnAssetRequest, updaterUserID string) (*domain.Asset, error)

	// SetAssetStatus moves an asset directly to the given status. Used for
	// maintenance, retirement and disposal transitions.
	SetAssetStatus(ctx context.Context, assetID string, status domain.AssetStatus, updaterUserID string) (*domain.Asset, error)

	// ListAssignments retrieves the asset's assignment history.
	ListAssignments(ctx context.Context, assetID string) ([]domain.Assignment, error)
}
