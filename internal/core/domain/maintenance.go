package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceType classifies a maintenance record.
type MaintenanceType string

const (
	Preventive MaintenanceType = "PREVENTIVE"
	Corrective MaintenanceType = "CORRECTIVE"
	Inspection MaintenanceType = "INSPECTION"
	Upgrade    MaintenanceType = "UPGRADE"
)

// IsValid reports whether the maintenance type is known.
func (t MaintenanceType) IsValid() bool {
	switch t {
	case Preventive, Corrective, Inspection, Upgrade:
		return true
	}
	return false
}

// MaintenanceRecord captures one maintenance event performed on an asset.
type MaintenanceRecord struct {
	RecordID        string           `json:"recordID"` // Primary Key (e.g., UUID)
	AssetID         string           `json:"assetID"`  // FK -> assets (Not Null)
	MaintenanceType MaintenanceType  `json:"maintenanceType"` // Default: PREVENTIVE
	Description     *string          `json:"description"`
	ScheduledDate   *time.Time       `json:"scheduledDate"`
	CompletedDate   *time.Time       `json:"completedDate"`
	Cost            *decimal.Decimal `json:"cost"`
	PerformedBy     *string          `json:"performedBy"`
	Notes           *string          `json:"notes"`
	AuditFields
}

// MaintenanceSchedule describes a recurring maintenance obligation for an asset.
type MaintenanceSchedule struct {
	ScheduleID    string     `json:"scheduleID"` // Primary Key (e.g., UUID)
	AssetID       string     `json:"assetID"`    // FK -> assets (Not Null)
	Description   string     `json:"description"`
	FrequencyDays int        `json:"frequencyDays"` // Positive
	LastPerformed *time.Time `json:"lastPerformed"`
	NextDue       time.Time  `json:"nextDue"`
	IsActive      bool       `json:"isActive"`
	AuditFields
}
