package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

var ErrInvalidMaintenanceType = errors.New("invalid maintenance type")

// maintenanceService provides maintenance record and schedule operations.
type maintenanceService struct {
	maintenanceRepo portsrepo.MaintenanceRepositoryFacade
	assetRepo       portsrepo.AssetRepositoryWithTx
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(maintenanceRepo portsrepo.MaintenanceRepositoryFacade, assetRepo portsrepo.AssetRepositoryWithTx) portssvc.MaintenanceSvcFacade {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		assetRepo:       assetRepo,
	}
}

// Ensure maintenanceService implements the portssvc.MaintenanceSvcFacade interface
var _ portssvc.MaintenanceSvcFacade = (*maintenanceService)(nil)

func (s *maintenanceService) CreateRecord(ctx context.Context, assetID string, req dto.CreateMaintenanceRecordRequest, creatorUserID string) (*domain.MaintenanceRecord, error) {
	maintenanceType := domain.Preventive
	if req.MaintenanceType != nil {
		maintenanceType = domain.MaintenanceType(*req.MaintenanceType)
		if !maintenanceType.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMaintenanceType, *req.MaintenanceType)
		}
	}
	if _, err := s.assetRepo.FindAssetByID(ctx, assetID); err != nil {
		return nil, fmt.Errorf("failed to find asset %s for maintenance record: %w", assetID, err)
	}

	now := time.Now()
	record := domain.MaintenanceRecord{
		RecordID:        uuid.NewString(),
		AssetID:         assetID,
		MaintenanceType: maintenanceType,
		Description:     req.Description,
		ScheduledDate:   req.ScheduledDate,
		CompletedDate:   req.CompletedDate,
		Cost:            req.Cost,
		PerformedBy:     req.PerformedBy,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.maintenanceRepo.SaveRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create maintenance record: %w", err)
	}
	return &record, nil
}

func (s *maintenanceService) GetRecordByID(ctx context.Context, recordID string) (*domain.MaintenanceRecord, error) {
	record, err := s.maintenanceRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance record %s: %w", recordID, err)
	}
	return record, nil
}

func (s *maintenanceService) ListRecordsByAsset(ctx context.Context, assetID string, limit int, nextToken *string) ([]domain.MaintenanceRecord, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	records, token, err := s.maintenanceRepo.ListRecordsByAsset(ctx, assetID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list maintenance records for asset %s: %w", assetID, err)
	}
	if records == nil {
		records = []domain.MaintenanceRecord{}
	}
	return records, token, nil
}

func (s *maintenanceService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateMaintenanceRecordRequest, updaterUserID string) (*domain.MaintenanceRecord, error) {
	record, err := s.maintenanceRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to find maintenance record %s for update: %w", recordID, err)
	}

	if req.MaintenanceType != nil {
		maintenanceType := domain.MaintenanceType(*req.MaintenanceType)
		if !maintenanceType.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMaintenanceType, *req.MaintenanceType)
		}
		record.MaintenanceType = maintenanceType
	}
	if req.Description != nil {
		record.Description = req.Description
	}
	if req.ScheduledDate != nil {
		record.ScheduledDate = req.ScheduledDate
	}
	if req.CompletedDate != nil {
		record.CompletedDate = req.CompletedDate
	}
	if req.Cost != nil {
		record.Cost = req.Cost
	}
	if req.PerformedBy != nil {
		record.PerformedBy = req.PerformedBy
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = updaterUserID

	if err := s.maintenanceRepo.UpdateRecord(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to update maintenance record %s: %w", recordID, err)
	}
	return record, nil
}

func (s *maintenanceService) DeleteRecord(ctx context.Context, recordID string) error {
	if err := s.maintenanceRepo.DeleteRecord(ctx, recordID); err != nil {
		return fmt.Errorf("failed to delete maintenance record %s: %w", recordID, err)
	}
	return nil
}

func (s *maintenanceService) CreateSchedule(ctx context.Context, assetID string, req dto.CreateMaintenanceScheduleRequest, creatorUserID string) (*domain.MaintenanceSchedule, error) {
	if _, err := s.assetRepo.FindAssetByID(ctx, assetID); err != nil {
		return nil, fmt.Errorf("failed to find asset %s for maintenance schedule: %w", assetID, err)
	}

	now := time.Now()
	schedule := domain.MaintenanceSchedule{
		ScheduleID:    uuid.NewString(),
		AssetID:       assetID,
		Description:   req.Description,
		FrequencyDays: req.FrequencyDays,
		LastPerformed: req.LastPerformed,
		NextDue:       req.NextDue,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.maintenanceRepo.SaveSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create maintenance schedule: %w", err)
	}
	return &schedule, nil
}

func (s *maintenanceService) ListSchedulesByAsset(ctx context.Context, assetID string) ([]domain.MaintenanceSchedule, error) {
	schedules, err := s.maintenanceRepo.ListSchedulesByAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance schedules for asset %s: %w", assetID, err)
	}
	if schedules == nil {
		schedules = []domain.MaintenanceSchedule{}
	}
	return schedules, nil
}

func (s *maintenanceService) ListUpcomingSchedules(ctx context.Context, withinDays int, now time.Time) ([]domain.MaintenanceSchedule, error) {
	if withinDays <= 0 {
		withinDays = 30
	}
	cutoff := now.AddDate(0, 0, withinDays)
	schedules, err := s.maintenanceRepo.ListUpcomingSchedules(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming maintenance schedules: %w", err)
	}
	if schedules == nil {
		schedules = []domain.MaintenanceSchedule{}
	}
	return schedules, nil
}

func (s *maintenanceService) UpdateSchedule(ctx context.Context, scheduleID string, req dto.UpdateMaintenanceScheduleRequest, updaterUserID string) (*domain.MaintenanceSchedule, error) {
	schedule, err := s.maintenanceRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find maintenance schedule %s for update: %w", scheduleID, err)
	}

	if req.Description != nil {
		schedule.Description = *req.Description
	}
	if req.FrequencyDays != nil {
		schedule.FrequencyDays = *req.FrequencyDays
	}
	if req.LastPerformed != nil {
		schedule.LastPerformed = req.LastPerformed
	}
	if req.NextDue != nil {
		schedule.NextDue = *req.NextDue
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}
	schedule.LastUpdatedAt = time.Now()
	schedule.LastUpdatedBy = updaterUserID

	if err := s.maintenanceRepo.UpdateSchedule(ctx, *schedule); err != nil {
		return nil, fmt.Errorf("failed to update maintenance schedule %s: %w", scheduleID, err)
	}
	return schedule, nil
}

func (s *maintenanceService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	if err := s.maintenanceRepo.DeleteSchedule(ctx, scheduleID); err != nil {
		return fmt.Errorf("failed to delete maintenance schedule %s: %w", scheduleID, err)
	}
	return nil
}
