package mapping

import (
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/models"
)

// ToModelCategory converts a domain Category to a model Category.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:          d.CategoryID,
		Name:                d.Name,
		Description:         d.Description,
		DepreciationMethod:  models.DepreciationMethod(d.DepreciationMethod),
		UsefulLifeYears:     d.UsefulLifeYears,
		SalvageValuePercent: d.SalvageValuePercent,
		ParentCategoryID:    d.ParentCategoryID,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:          m.CategoryID,
		Name:                m.Name,
		Description:         m.Description,
		DepreciationMethod:  domain.DepreciationMethod(m.DepreciationMethod),
		UsefulLifeYears:     m.UsefulLifeYears,
		SalvageValuePercent: m.SalvageValuePercent,
		ParentCategoryID:    m.ParentCategoryID,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories to domain Categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
