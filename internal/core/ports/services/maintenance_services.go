package services

import (
	"context"
	"time"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// MaintenanceSvcFacade defines the interface for maintenance operations.
type MaintenanceSvcFacade interface {
	// CreateRecord logs maintenance performed on an asset.
	CreateRecord(ctx context.Context, assetID string, req dto.CreateMaintenanceRecordRequest, creatorUserID string) (*domain.MaintenanceRecord, error)

	// GetRecordByID retrieves a specific maintenance record.
	GetRecordByID(ctx context.Context, recordID string) (*domain.MaintenanceRecord, error)

	// ListRecordsByAsset retrieves a paginated list of an asset's
	// maintenance records.
	ListRecordsByAsset(ctx context.Context, assetID string, limit int, nextToken *string) ([]domain.MaintenanceRecord, *string, error)

	// UpdateRecord applies the non-nil fields of the request to a record.
	UpdateRecord(ctx context.Context, recordID string, req dto.UpdateMaintenanceRecordRequest, updaterUserID string) (*domain.MaintenanceRecord, error)

	// DeleteRecord removes a maintenance record.
	DeleteRecord(ctx context.Context, recordID string) error

	// CreateSchedule creates a recurring maintenance schedule for an asset.
	CreateSchedule(ctx context.Context, assetID string, req dto.CreateMaintenanceScheduleRequest, creatorUserID string) (*domain.MaintenanceSchedule, error)

	// ListSchedulesByAsset retrieves all schedules for an asset.
	ListSchedulesByAsset(ctx context.Context, assetID string) ([]domain.MaintenanceSchedule, error)

	// ListUpcomingSchedules retrieves active schedules due within the given
	// number of days from now.
	ListUpcomingSchedules(ctx context.Context, withinDays int, now time.Time) ([]domain.MaintenanceSchedule, error)

	// UpdateSchedule applies the non-nil fields of the request to a schedule.
	UpdateSchedule(ctx context.Context, scheduleID string, req dto.UpdateMaintenanceScheduleRequest, updaterUserID string) (*domain.MaintenanceSchedule, error)

	// DeleteSchedule removes a maintenance schedule.
	DeleteSchedule(ctx context.Context, scheduleID string) error
}
