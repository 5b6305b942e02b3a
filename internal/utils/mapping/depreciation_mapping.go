package mapping

import (
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/models"
)

// ToModelDepreciationEntry converts a domain DepreciationEntry to a model entry.
func ToModelDepreciationEntry(d domain.DepreciationEntry) models.DepreciationEntry {
	return models.DepreciationEntry{
		EntryID:                 d.EntryID,
		AssetID:                 d.AssetID,
		PeriodStart:             d.PeriodStart,
		PeriodEnd:               d.PeriodEnd,
		DepreciationAmount:      d.DepreciationAmount,
		AccumulatedDepreciation: d.AccumulatedDepreciation,
		BookValue:               d.BookValue,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepreciationEntry converts a model DepreciationEntry to a domain entry.
func ToDomainDepreciationEntry(m models.DepreciationEntry) domain.DepreciationEntry {
	return domain.DepreciationEntry{
		EntryID:                 m.EntryID,
		AssetID:                 m.AssetID,
		PeriodStart:             m.PeriodStart,
		PeriodEnd:               m.PeriodEnd,
		DepreciationAmount:      m.DepreciationAmount,
		AccumulatedDepreciation: m.AccumulatedDepreciation,
		BookValue:               m.BookValue,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepreciationEntrySlice converts a slice of model entries to domain entries.
func ToDomainDepreciationEntrySlice(ms []models.DepreciationEntry) []domain.DepreciationEntry {
	ds := make([]domain.DepreciationEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepreciationEntry(m)
	}
	return ds
}
