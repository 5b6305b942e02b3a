package repositories

import (
	"context"
	"time"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// MaintenanceRecordReader defines read operations for maintenance records.
type MaintenanceRecordReader interface {
	// FindRecordByID retrieves a specific maintenance record.
	FindRecordByID(ctx context.Context, recordID string) (*domain.MaintenanceRecord, error)

	// ListRecordsByAsset retrieves a paginated list of maintenance records
	// for an asset using token-based pagination.
	ListRecordsByAsset(ctx context.Context, assetID string, limit int, nextToken *string) ([]domain.MaintenanceRecord, *string, error)
}

// MaintenanceRecordWriter defines write operations for maintenance records.
type MaintenanceRecordWriter interface {
	// SaveRecord persists a new maintenance record.
	SaveRecord(ctx context.Context, record domain.MaintenanceRecord) error

	// UpdateRecord updates the mutable fields of a maintenance record.
	UpdateRecord(ctx context.Context, record domain.MaintenanceRecord) error

	// DeleteRecord removes a maintenance record.
	DeleteRecord(ctx context.Context, recordID string) error
}

// MaintenanceScheduleReader defines read operations for maintenance schedules.
type MaintenanceScheduleReader interface {
	// FindScheduleByID retrieves a specific maintenance schedule.
	FindScheduleByID(ctx context.Context, scheduleID string) (*domain.MaintenanceSchedule, error)

	// ListSchedulesByAsset retrieves all schedules for an asset.
	ListSchedulesByAsset(ctx context.Context, assetID string) ([]domain.MaintenanceSchedule, error)

	// ListUpcomingSchedules retrieves active schedules whose next_due falls
	// on or before the cutoff date, ordered by next_due.
	ListUpcomingSchedules(ctx context.Context, cutoff time.Time) ([]domain.MaintenanceSchedule, error)
}

// MaintenanceScheduleWriter defines write operations for maintenance schedules.
type MaintenanceScheduleWriter interface {
	// SaveSchedule persists a new maintenance schedule.
	SaveSchedule(ctx context.Context, schedule domain.MaintenanceSchedule) error

	// UpdateSchedule updates the mutable fields of a maintenance schedule.
	UpdateSchedule(ctx context.Context, schedule domain.MaintenanceSchedule) error

	// DeleteSchedule removes a maintenance schedule.
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

// MaintenanceRepositoryFacade combines all maintenance repository interfaces.
type MaintenanceRepositoryFacade interface {
	MaintenanceRecordReader
	MaintenanceRecordWriter
	MaintenanceScheduleReader
	MaintenanceScheduleWriter
}
