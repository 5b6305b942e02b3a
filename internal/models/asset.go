package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus mirrors the lifecycle status enum stored in the assets table.
type AssetStatus string

const (
	Available     AssetStatus = "AVAILABLE"
	Assigned      AssetStatus = "ASSIGNED"
	InMaintenance AssetStatus = "IN_MAINTENANCE"
	Retired       AssetStatus = "RETIRED"
	Disposed      AssetStatus = "DISPOSED"
)

// Asset is the database representation of a tracked asset.
type Asset struct {
	AssetID        string           `json:"assetID"`
	Name           string           `json:"name"`
	AssetTag       string           `json:"assetTag"`
	SerialNumber   *string          `json:"serialNumber"`
	Description    *string          `json:"description"`
	Status         AssetStatus      `json:"status"`
	PurchaseDate   *time.Time       `json:"purchaseDate"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice"`
	CurrentValue   *decimal.Decimal `json:"currentValue"`
	WarrantyExpiry *time.Time       `json:"warrantyExpiry"`
	CategoryID     *string          `json:"categoryID"`
	LocationID     *string          `json:"locationID"`
	DepartmentID   *string          `json:"departmentID"`
	VendorID       *string          `json:"vendorID"`
	AuditFields
}
