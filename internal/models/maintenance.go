package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceType mirrors the maintenance type enum.
type MaintenanceType string

const (
	Preventive MaintenanceType = "PREVENTIVE"
	Corrective MaintenanceType = "CORRECTIVE"
	Inspection MaintenanceType = "INSPECTION"
	Upgrade    MaintenanceType = "UPGRADE"
)

// MaintenanceRecord is the database representation of a maintenance event.
type MaintenanceRecord struct {
	RecordID        string           `json:"recordID"`
	AssetID         string           `json:"assetID"`
	MaintenanceType MaintenanceType  `json:"maintenanceType"`
	Description     *string          `json:"description"`
	ScheduledDate   *time.Time       `json:"scheduledDate"`
	CompletedDate   *time.Time       `json:"completedDate"`
	Cost            *decimal.Decimal `json:"cost"`
	PerformedBy     *string          `json:"performedBy"`
	Notes           *string          `json:"notes"`
	AuditFields
}

// MaintenanceSchedule is the database representation of a recurring schedule.
type MaintenanceSchedule struct {
	ScheduleID    string     `json:"scheduleID"`
	AssetID       string     `json:"assetID"`
	Description   string     `json:"description"`
	FrequencyDays int        `json:"frequencyDays"`
	LastPerformed *time.Time `json:"lastPerformed"`
	NextDue       time.Time  `json:"nextDue"`
	IsActive      bool       `json:"isActive"`
	AuditFields
}
