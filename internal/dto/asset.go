package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// CreateAssetRequest defines the payload for registering a new asset.
type CreateAssetRequest struct {
	Name           string           `json:"name" binding:"required,max=255"`
	AssetTag       string           `json:"assetTag" binding:"required,max=100"`
	SerialNumber   *string          `json:"serialNumber,omitempty" binding:"omitempty,max=100"`
	Description    *string          `json:"description,omitempty"`
	CategoryID     *string          `json:"categoryId,omitempty"`
	LocationID     *string          `json:"locationId,omitempty"`
	DepartmentID   *string          `json:"departmentId,omitempty"`
	VendorID       *string          `json:"vendorId,omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice,omitempty"`
	PurchaseDate   *time.Time       `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time       `json:"warrantyExpiry,omitempty"`
}

// UpdateAssetRequest defines the payload for updating an asset. Nil fields
// are left unchanged.
type UpdateAssetRequest struct {
	Name           *string          `json:"name,omitempty" binding:"omitempty,max=255"`
	SerialNumber   *string          `json:"serialNumber,omitempty" binding:"omitempty,max=100"`
	Description    *string          `json:"description,omitempty"`
	CategoryID     *string          `json:"categoryId,omitempty"`
	LocationID     *string          `json:"locationId,omitempty"`
	DepartmentID   *string          `json:"departmentId,omitempty"`
	VendorID       *string          `json:"vendorId,omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice,omitempty"`
	PurchaseDate   *time.Time       `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time       `json:"warrantyExpiry,omitempty"`
}

// AssignAssetRequest defines the payload for assigning an asset to a custodian.
type AssignAssetRequest struct {
	AssigneeID   string  `json:"assigneeId" binding:"required"`
	AssigneeName *string `json:"assigneeName,omitempty" binding:"omitempty,max=255"`
	Notes        *string `json:"notes,omitempty"`
}

// ReturnAssetRequest defines the payload for returning an assigned asset.
type ReturnAssetRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// UpdateAssetStatusRequest defines the payload for a direct status change.
type UpdateAssetStatusRequest struct {
	Status string `json:"status" binding:"required,assetstatus"`
}

// ListAssetsParams defines filters for asset listing.
type ListAssetsParams struct {
	Status       *string `form:"status"`
	CategoryID   *string `form:"categoryId"`
	LocationID   *string `form:"locationId"`
	DepartmentID *string `form:"departmentId"`
	Limit        int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken    *string `form:"nextToken"`
}

// AssetResponse is the API representation of an asset.
type AssetResponse struct {
	AssetID        string             `json:"assetId"`
	Name           string             `json:"name"`
	AssetTag       string             `json:"assetTag"`
	SerialNumber   *string            `json:"serialNumber,omitempty"`
	Description    *string            `json:"description,omitempty"`
	Status         domain.AssetStatus `json:"status"`
	CategoryID     *string            `json:"categoryId,omitempty"`
	LocationID     *string            `json:"locationId,omitempty"`
	DepartmentID   *string            `json:"departmentId,omitempty"`
	VendorID       *string            `json:"vendorId,omitempty"`
	PurchasePrice  *decimal.Decimal   `json:"purchasePrice,omitempty"`
	CurrentValue   *decimal.Decimal   `json:"currentValue,omitempty"`
	PurchaseDate   *time.Time         `json:"purchaseDate,omitempty"`
	WarrantyExpiry *time.Time         `json:"warrantyExpiry,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ToAssetResponse converts a domain asset to its API representation.
func ToAssetResponse(asset domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:        asset.AssetID,
		Name:           asset.Name,
		AssetTag:       asset.AssetTag,
		SerialNumber:   asset.SerialNumber,
		Description:    asset.Description,
		Status:         asset.Status,
		CategoryID:     asset.CategoryID,
		LocationID:     asset.LocationID,
		DepartmentID:   asset.DepartmentID,
		VendorID:       asset.VendorID,
		PurchasePrice:  asset.PurchasePrice,
		CurrentValue:   asset.CurrentValue,
		PurchaseDate:   asset.PurchaseDate,
		WarrantyExpiry: asset.WarrantyExpiry,
		CreatedAt:      asset.CreatedAt,
		LastUpdatedAt:  asset.LastUpdatedAt,
	}
}

// ToAssetResponses converts a slice of domain assets.
func ToAssetResponses(assets []domain.Asset) []AssetResponse {
	responses := make([]AssetResponse, 0, len(assets))
	for _, asset := range assets {
		responses = append(responses, ToAssetResponse(asset))
	}
	return responses
}

// ListAssetsResponse is a paginated page of assets.
type ListAssetsResponse struct {
	Assets    []AssetResponse `json:"assets"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// AssignmentResponse is the API representation of an assignment.
type AssignmentResponse struct {
	AssignmentID string     `json:"assignmentId"`
	AssetID      string     `json:"assetId"`
	AssigneeID   string     `json:"assigneeId"`
	AssigneeName *string    `json:"assigneeName,omitempty"`
	AssignedAt   time.Time  `json:"assignedAt"`
	ReturnedAt   *time.Time `json:"returnedAt,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// ToAssignmentResponse converts a domain assignment to its API representation.
func ToAssignmentResponse(assignment domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: assignment.AssignmentID,
		AssetID:      assignment.AssetID,
		AssigneeID:   assignment.AssigneeID,
		AssigneeName: assignment.AssigneeName,
		AssignedAt:   assignment.AssignedAt,
		ReturnedAt:   assignment.ReturnedAt,
		Notes:        assignment.Notes,
	}
}

// ToAssignmentResponses converts a slice of domain assignments.
func ToAssignmentResponses(assignments []domain.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, ToAssignmentResponse(assignment))
	}
	return responses
}
