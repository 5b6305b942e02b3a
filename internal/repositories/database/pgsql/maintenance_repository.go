package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	"github.com/hecate-codex/asset_mgmt_app/internal/models"
	"github.com/hecate-codex/asset_mgmt_app/internal/utils/mapping"
	"github.com/hecate-codex/asset_mgmt_app/internal/utils/pagination"
)

const maintenanceRecordColumns = `record_id, asset_id, maintenance_type, description, scheduled_date, completed_date, cost, performed_by, notes, created_at, created_by, last_updated_at, last_updated_by`

const maintenanceScheduleColumns = `schedule_id, asset_id, description, frequency_days, last_performed, next_due, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxMaintenanceRepository struct {
	BaseRepository
}

// newPgxMaintenanceRepository creates a new repository for maintenance data.
func newPgxMaintenanceRepository(pool *pgxpool.Pool) portsrepo.MaintenanceRepositoryFacade {
	return &PgxMaintenanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MaintenanceRepositoryFacade = (*PgxMaintenanceRepository)(nil)

func scanMaintenanceRecord(row pgx.Row) (models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	err := row.Scan(
		&record.RecordID,
		&record.AssetID,
		&record.MaintenanceType,
		&record.Description,
		&record.ScheduledDate,
		&record.CompletedDate,
		&record.Cost,
		&record.PerformedBy,
		&record.Notes,
		&record.CreatedAt,
		&record.CreatedBy,
		&record.LastUpdatedAt,
		&record.LastUpdatedBy,
	)
	return record, err
}

func scanMaintenanceSchedule(row pgx.Row) (models.MaintenanceSchedule, error) {
	var schedule models.MaintenanceSchedule
	err := row.Scan(
		&schedule.ScheduleID,
		&schedule.AssetID,
		&schedule.Description,
		&schedule.FrequencyDays,
		&schedule.LastPerformed,
		&schedule.NextDue,
		&schedule.IsActive,
		&schedule.CreatedAt,
		&schedule.CreatedBy,
		&schedule.LastUpdatedAt,
		&schedule.LastUpdatedBy,
	)
	return schedule, err
}

// SaveRecord inserts a new maintenance record.
func (r *PgxMaintenanceRepository) SaveRecord(ctx context.Context, record domain.MaintenanceRecord) error {
	modelRecord := mapping.ToModelMaintenanceRecord(record)

	query := `
		INSERT INTO maintenance_records (` + maintenanceRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelRecord.RecordID,
		modelRecord.AssetID,
		modelRecord.MaintenanceType,
		modelRecord.Description,
		modelRecord.ScheduledDate,
		modelRecord.CompletedDate,
		modelRecord.Cost,
		modelRecord.PerformedBy,
		modelRecord.Notes,
		modelRecord.CreatedAt,
		modelRecord.CreatedBy,
		modelRecord.LastUpdatedAt,
		modelRecord.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save maintenance record %s: %w", modelRecord.RecordID, err)
	}
	return nil
}

// FindRecordByID retrieves a maintenance record by its id.
func (r *PgxMaintenanceRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceRecordColumns + ` FROM maintenance_records WHERE record_id = $1;`

	modelRecord, err := scanMaintenanceRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("maintenance record %s not found", recordID))
		}
		return nil, fmt.Errorf("failed to find maintenance record %s: %w", recordID, err)
	}

	domainRecord := mapping.ToDomainMaintenanceRecord(modelRecord)
	return &domainRecord, nil
}

// ListRecordsByAsset retrieves a page of an asset's maintenance records.
func (r *PgxMaintenanceRepository) ListRecordsByAsset(ctx context.Context, assetID string, limit int, nextToken *string) ([]domain.MaintenanceRecord, *string, error) {
	query := `SELECT ` + maintenanceRecordColumns + ` FROM maintenance_records WHERE asset_id = $1`
	args := []interface{}{assetID}
	argPos := 2

	if nextToken != nil && *nextToken != "" {
		tokenTime, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" AND (created_at, record_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, tokenTime, tokenID)
		argPos += 2
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, record_id DESC LIMIT $%d", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query maintenance records for asset %s: %w", assetID, err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MaintenanceRecord, error) {
		return scanMaintenanceRecord(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan maintenance records for asset %s: %w", assetID, err)
	}

	var token *string
	if len(modelRecords) > limit {
		modelRecords = modelRecords[:limit]
		last := modelRecords[len(modelRecords)-1]
		encoded := pagination.EncodeToken(last.CreatedAt, last.RecordID)
		token = &encoded
	}

	return mapping.ToDomainMaintenanceRecordSlice(modelRecords), token, nil
}

// UpdateRecord updates the mutable fields of a maintenance record.
func (r *PgxMaintenanceRepository) UpdateRecord(ctx context.Context, record domain.MaintenanceRecord) error {
	modelRecord := mapping.ToModelMaintenanceRecord(record)

	query := `
		UPDATE maintenance_records SET
			maintenance_type = $2,
			description = $3,
			scheduled_date = $4,
			completed_date = $5,
			cost = $6,
			performed_by = $7,
			notes = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE record_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelRecord.RecordID,
		modelRecord.MaintenanceType,
		modelRecord.Description,
		modelRecord.ScheduledDate,
		modelRecord.CompletedDate,
		modelRecord.Cost,
		modelRecord.PerformedBy,
		modelRecord.Notes,
		modelRecord.LastUpdatedAt,
		modelRecord.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update maintenance record %s: %w", modelRecord.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("maintenance record %s not found", modelRecord.RecordID))
	}
	return nil
}

// DeleteRecord removes a maintenance record.
func (r *PgxMaintenanceRepository) DeleteRecord(ctx context.Context, recordID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM maintenance_records WHERE record_id = $1;`, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance record %s: %w", recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("maintenance record %s not found", recordID))
	}
	return nil
}

// SaveSchedule inserts a new maintenance schedule.
func (r *PgxMaintenanceRepository) SaveSchedule(ctx context.Context, schedule domain.MaintenanceSchedule) error {
	modelSchedule := mapping.ToModelMaintenanceSchedule(schedule)

	query := `
		INSERT INTO maintenance_schedules (` + maintenanceScheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelSchedule.ScheduleID,
		modelSchedule.AssetID,
		modelSchedule.Description,
		modelSchedule.FrequencyDays,
		modelSchedule.LastPerformed,
		modelSchedule.NextDue,
		modelSchedule.IsActive,
		modelSchedule.CreatedAt,
		modelSchedule.CreatedBy,
		modelSchedule.LastUpdatedAt,
		modelSchedule.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save maintenance schedule %s: %w", modelSchedule.ScheduleID, err)
	}
	return nil
}

// FindScheduleByID retrieves a maintenance schedule by its id.
func (r *PgxMaintenanceRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.MaintenanceSchedule, error) {
	query := `SELECT ` + maintenanceScheduleColumns + ` FROM maintenance_schedules WHERE schedule_id = $1;`

	modelSchedule, err := scanMaintenanceSchedule(r.Pool.QueryRow(ctx, query, scheduleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("maintenance schedule %s not found", scheduleID))
		}
		return nil, fmt.Errorf("failed to find maintenance schedule %s: %w", scheduleID, err)
	}

	domainSchedule := mapping.ToDomainMaintenanceSchedule(modelSchedule)
	return &domainSchedule, nil
}

// ListSchedulesByAsset retrieves all schedules for an asset.
func (r *PgxMaintenanceRepository) ListSchedulesByAsset(ctx context.Context, assetID string) ([]domain.MaintenanceSchedule, error) {
	query := `SELECT ` + maintenanceScheduleColumns + ` FROM maintenance_schedules WHERE asset_id = $1 ORDER BY next_due;`

	rows, err := r.Pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance schedules for asset %s: %w", assetID, err)
	}
	defer rows.Close()

	modelSchedules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MaintenanceSchedule, error) {
		return scanMaintenanceSchedule(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan maintenance schedules for asset %s: %w", assetID, err)
	}

	return mapping.ToDomainMaintenanceScheduleSlice(modelSchedules), nil
}

// ListUpcomingSchedules retrieves active schedules due on or before the cutoff.
func (r *PgxMaintenanceRepository) ListUpcomingSchedules(ctx context.Context, cutoff time.Time) ([]domain.MaintenanceSchedule, error) {
	query := `
		SELECT ` + maintenanceScheduleColumns + `
		FROM maintenance_schedules
		WHERE is_active AND next_due <= $1
		ORDER BY next_due;
	`

	rows, err := r.Pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming maintenance schedules: %w", err)
	}
	defer rows.Close()

	modelSchedules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MaintenanceSchedule, error) {
		return scanMaintenanceSchedule(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan upcoming maintenance schedules: %w", err)
	}

	return mapping.ToDomainMaintenanceScheduleSlice(modelSchedules), nil
}

// UpdateSchedule updates the mutable fields of a maintenance schedule.
func (r *PgxMaintenanceRepository) UpdateSchedule(ctx context.Context, schedule domain.MaintenanceSchedule) error {
	modelSchedule := mapping.ToModelMaintenanceSchedule(schedule)

	query := `
		UPDATE maintenance_schedules SET
			description = $2,
			frequency_days = $3,
			last_performed = $4,
			next_due = $5,
			is_active = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE schedule_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelSchedule.ScheduleID,
		modelSchedule.Description,
		modelSchedule.FrequencyDays,
		modelSchedule.LastPerformed,
		modelSchedule.NextDue,
		modelSchedule.IsActive,
		modelSchedule.LastUpdatedAt,
		modelSchedule.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update maintenance schedule %s: %w", modelSchedule.ScheduleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("maintenance schedule %s not found", modelSchedule.ScheduleID))
	}
	return nil
}

// DeleteSchedule removes a maintenance schedule.
func (r *PgxMaintenanceRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM maintenance_schedules WHERE schedule_id = $1;`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance schedule %s: %w", scheduleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("maintenance schedule %s not found", scheduleID))
	}
	return nil
}
