package repositories

import (
	"context"
	"time"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// AssetFilter narrows asset listings. Nil fields are ignored.
type AssetFilter struct {
	Status       *domain.AssetStatus
	CategoryID   *string
	LocationID   *string
	DepartmentID *string
}

// AssetReader defines read operations for asset data.
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// FindAssetWithCategory retrieves an asset with its category policy
	// populated (nil Category when the asset has none).
	FindAssetWithCategory(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves a filtered, paginated list of assets using
	// token-based pagination. It returns the assets, a token for the next
	// page, and an error.
	ListAssets(ctx context.Context, filter AssetFilter, limit int, nextToken *string) ([]domain.Asset, *string, error)
}

// AssetWriter defines write operations for asset data.
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset updates the mutable fields of an asset.
	UpdateAsset(ctx context.Context, asset domain.Asset) error

	// DeleteAsset removes an asset.
	DeleteAsset(ctx context.Context, assetID string) error

	// AssignAsset opens the given assignment and moves its asset to ASSIGNED
	// in a single database transaction. The asset row is locked and its
	// status re-checked under the lock; ErrConflict is returned when the
	// asset is already assigned, ErrInvalidState for any other
	// non-assignable status.
	AssignAsset(ctx context.Context, assignment domain.Assignment, updatedBy string) error

	// ReturnAsset closes the asset's open assignment (appending returnNotes
	// to its notes) and moves the asset to AVAILABLE in a single database
	// transaction. A missing open assignment is tolerated: the status
	// transition still proceeds. ErrInvalidState is returned when the asset
	// is not currently assigned.
	ReturnAsset(ctx context.Context, assetID string, returnNotes *string, returnedAt time.Time, updatedBy string) error
}

// AssignmentReader defines read operations for assignment history.
type AssignmentReader interface {
	// FindOpenAssignment retrieves the asset's single open assignment, or
	// ErrNotFound when none exists.
	FindOpenAssignment(ctx context.Context, assetID string) (*domain.Assignment, error)

	// ListAssignmentsByAsset retrieves the asset's assignment history,
	// most recent first.
	ListAssignmentsByAsset(ctx context.Context, assetID string) ([]domain.Assignment, error)
}

// AssetRepositoryFacade combines all asset-related repository interfaces.
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
	AssignmentReader
}

// AssetRepositoryWithTx extends AssetRepositoryFacade with transaction capabilities.
type AssetRepositoryWithTx interface {
	AssetRepositoryFacade
	TransactionManager
}
