package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus indicates where an asset sits in its operational lifecycle.
type AssetStatus string

const (
	Available     AssetStatus = "AVAILABLE"
	Assigned      AssetStatus = "ASSIGNED"
	InMaintenance AssetStatus = "IN_MAINTENANCE"
	Retired       AssetStatus = "RETIRED"
	Disposed      AssetStatus = "DISPOSED"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s AssetStatus) IsValid() bool {
	switch s {
	case Available, Assigned, InMaintenance, Retired, Disposed:
		return true
	}
	return false
}

// CanAssign reports whether an asset in this status may be handed to an assignee.
// Only AVAILABLE and IN_MAINTENANCE assets are assignable; RETIRED and DISPOSED
// are terminal for assignment purposes.
func (s AssetStatus) CanAssign() bool {
	return s == Available || s == InMaintenance
}

// Asset represents a tracked physical asset within the core domain.
// CurrentValue is a cached projection of the depreciation ledger's most recent
// book value (or the purchase price when no entries exist); it is only ever
// written alongside a ledger write.
type Asset struct {
	AssetID        string           `json:"assetID"`  // Primary Key (e.g., UUID)
	Name           string           `json:"name"`     // User-facing name (Not Null)
	AssetTag       string           `json:"assetTag"` // Unique inventory tag (Not Null)
	SerialNumber   *string          `json:"serialNumber"`
	Description    *string          `json:"description"`
	Status         AssetStatus      `json:"status"` // Default: AVAILABLE
	PurchaseDate   *time.Time       `json:"purchaseDate"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice"` // Nullable, 2 fractional digits
	CurrentValue   *decimal.Decimal `json:"currentValue"`  // Derived from the depreciation ledger
	WarrantyExpiry *time.Time       `json:"warrantyExpiry"`
	CategoryID     *string          `json:"categoryID"`   // Nullable FK -> categories
	LocationID     *string          `json:"locationID"`   // Nullable FK -> locations
	DepartmentID   *string          `json:"departmentID"` // Nullable FK -> departments
	VendorID       *string          `json:"vendorID"`     // Nullable FK -> vendors
	Category       *Category        `json:"category,omitempty"` // Loaded on demand
	AuditFields
}
