package mapping

import (
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/models"
)

// ToModelMaintenanceRecord converts a domain MaintenanceRecord to a model record.
func ToModelMaintenanceRecord(d domain.MaintenanceRecord) models.MaintenanceRecord {
	return models.MaintenanceRecord{
		RecordID:        d.RecordID,
		AssetID:         d.AssetID,
		MaintenanceType: models.MaintenanceType(d.MaintenanceType),
		Description:     d.Description,
		ScheduledDate:   d.ScheduledDate,
		CompletedDate:   d.CompletedDate,
		Cost:            d.Cost,
		PerformedBy:     d.PerformedBy,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMaintenanceRecord converts a model MaintenanceRecord to a domain record.
func ToDomainMaintenanceRecord(m models.MaintenanceRecord) domain.MaintenanceRecord {
	return domain.MaintenanceRecord{
		RecordID:        m.RecordID,
		AssetID:         m.AssetID,
		MaintenanceType: domain.MaintenanceType(m.MaintenanceType),
		Description:     m.Description,
		ScheduledDate:   m.ScheduledDate,
		CompletedDate:   m.CompletedDate,
		Cost:            m.Cost,
		PerformedBy:     m.PerformedBy,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMaintenanceRecordSlice converts model records to domain records.
func ToDomainMaintenanceRecordSlice(ms []models.MaintenanceRecord) []domain.MaintenanceRecord {
	ds := make([]domain.MaintenanceRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMaintenanceRecord(m)
	}
	return ds
}

// ToModelMaintenanceSchedule converts a domain MaintenanceSchedule to a model schedule.
func ToModelMaintenanceSchedule(d domain.MaintenanceSchedule) models.MaintenanceSchedule {
	return models.MaintenanceSchedule{
		ScheduleID:    d.ScheduleID,
		AssetID:       d.AssetID,
		Description:   d.Description,
		FrequencyDays: d.FrequencyDays,
		LastPerformed: d.LastPerformed,
		NextDue:       d.NextDue,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMaintenanceSchedule converts a model MaintenanceSchedule to a domain schedule.
func ToDomainMaintenanceSchedule(m models.MaintenanceSchedule) domain.MaintenanceSchedule {
	return domain.MaintenanceSchedule{
		ScheduleID:    m.ScheduleID,
		AssetID:       m.AssetID,
		Description:   m.Description,
		FrequencyDays: m.FrequencyDays,
		LastPerformed: m.LastPerformed,
		NextDue:       m.NextDue,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMaintenanceScheduleSlice converts model schedules to domain schedules.
func ToDomainMaintenanceScheduleSlice(ms []models.MaintenanceSchedule) []domain.MaintenanceSchedule {
	ds := make([]domain.MaintenanceSchedule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMaintenanceSchedule(m)
	}
	return ds
}
