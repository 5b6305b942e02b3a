package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// CreateMaintenanceRecordRequest defines the payload for logging maintenance
// on an asset. An empty maintenance type defaults to PREVENTIVE.
type CreateMaintenanceRecordRequest struct {
	MaintenanceType *string          `json:"maintenanceType,omitempty" binding:"omitempty,maintenancetype"`
	Description     *string          `json:"description,omitempty"`
	ScheduledDate   *time.Time       `json:"scheduledDate,omitempty"`
	CompletedDate   *time.Time       `json:"completedDate,omitempty"`
	Cost            *decimal.Decimal `json:"cost,omitempty"`
	PerformedBy     *string          `json:"performedBy,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// UpdateMaintenanceRecordRequest defines the payload for updating a
// maintenance record. Nil fields are left unchanged.
type UpdateMaintenanceRecordRequest struct {
	MaintenanceType *string          `json:"maintenanceType,omitempty" binding:"omitempty,maintenancetype"`
	Description     *string          `json:"description,omitempty"`
	ScheduledDate   *time.Time       `json:"scheduledDate,omitempty"`
	CompletedDate   *time.Time       `json:"completedDate,omitempty"`
	Cost            *decimal.Decimal `json:"cost,omitempty"`
	PerformedBy     *string          `json:"performedBy,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// MaintenanceRecordResponse is the API representation of a maintenance record.
type MaintenanceRecordResponse struct {
	RecordID        string                 `json:"recordId"`
	AssetID         string                 `json:"assetId"`
	MaintenanceType domain.MaintenanceType `json:"maintenanceType"`
	Description     *string                `json:"description,omitempty"`
	ScheduledDate   *time.Time             `json:"scheduledDate,omitempty"`
	CompletedDate   *time.Time             `json:"completedDate,omitempty"`
	Cost            *decimal.Decimal       `json:"cost,omitempty"`
	PerformedBy     *string                `json:"performedBy,omitempty"`
	Notes           *string                `json:"notes,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToMaintenanceRecordResponse converts a domain maintenance record.
func ToMaintenanceRecordResponse(record domain.MaintenanceRecord) MaintenanceRecordResponse {
	return MaintenanceRecordResponse{
		RecordID:        record.RecordID,
		AssetID:         record.AssetID,
		MaintenanceType: record.MaintenanceType,
		Description:     record.Description,
		ScheduledDate:   record.ScheduledDate,
		CompletedDate:   record.CompletedDate,
		Cost:            record.Cost,
		PerformedBy:     record.PerformedBy,
		Notes:           record.Notes,
		CreatedAt:       record.CreatedAt,
	}
}

// ToMaintenanceRecordResponses converts a slice of domain maintenance records.
func ToMaintenanceRecordResponses(records []domain.MaintenanceRecord) []MaintenanceRecordResponse {
	responses := make([]MaintenanceRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, ToMaintenanceRecordResponse(record))
	}
	return responses
}

// ListMaintenanceRecordsResponse is a paginated page of maintenance records.
type ListMaintenanceRecordsResponse struct {
	Records   []MaintenanceRecordResponse `json:"records"`
	NextToken *string                     `json:"nextToken,omitempty"`
}

// CreateMaintenanceScheduleRequest defines the payload for creating a
// recurring maintenance schedule.
type CreateMaintenanceScheduleRequest struct {
	Description   string     `json:"description" binding:"required"`
	FrequencyDays int        `json:"frequencyDays" binding:"required,min=1"`
	LastPerformed *time.Time `json:"lastPerformed,omitempty"`
	NextDue       time.Time  `json:"nextDue" binding:"required"`
}

// UpdateMaintenanceScheduleRequest defines the payload for updating a
// maintenance schedule. Nil fields are left unchanged.
type UpdateMaintenanceScheduleRequest struct {
	Description   *string    `json:"description,omitempty"`
	FrequencyDays *int       `json:"frequencyDays,omitempty" binding:"omitempty,min=1"`
	LastPerformed *time.Time `json:"lastPerformed,omitempty"`
	NextDue       *time.Time `json:"nextDue,omitempty"`
	IsActive      *bool      `json:"isActive,omitempty"`
}

// MaintenanceScheduleResponse is the API representation of a schedule.
type MaintenanceScheduleResponse struct {
	ScheduleID    string     `json:"scheduleId"`
	AssetID       string     `json:"assetId"`
	Description   string     `json:"description"`
	FrequencyDays int        `json:"frequencyDays"`
	LastPerformed *time.Time `json:"lastPerformed,omitempty"`
	NextDue       time.Time  `json:"nextDue"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ToMaintenanceScheduleResponse converts a domain maintenance schedule.
func ToMaintenanceScheduleResponse(schedule domain.MaintenanceSchedule) MaintenanceScheduleResponse {
	return MaintenanceScheduleResponse{
		ScheduleID:    schedule.ScheduleID,
		AssetID:       schedule.AssetID,
		Description:   schedule.Description,
		FrequencyDays: schedule.FrequencyDays,
		LastPerformed: schedule.LastPerformed,
		NextDue:       schedule.NextDue,
		IsActive:      schedule.IsActive,
		CreatedAt:     schedule.CreatedAt,
	}
}

// ToMaintenanceScheduleResponses converts a slice of domain schedules.
func ToMaintenanceScheduleResponses(schedules []domain.MaintenanceSchedule) []MaintenanceScheduleResponse {
	responses := make([]MaintenanceScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		responses = append(responses, ToMaintenanceScheduleResponse(schedule))
	}
	return responses
}
