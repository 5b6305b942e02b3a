package mapping

import (
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset.
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:        d.AssetID,
		Name:           d.Name,
		AssetTag:       d.AssetTag,
		SerialNumber:   d.SerialNumber,
		Description:    d.Description,
		Status:         models.AssetStatus(d.Status),
		PurchaseDate:   d.PurchaseDate,
		PurchasePrice:  d.PurchasePrice,
		CurrentValue:   d.CurrentValue,
		WarrantyExpiry: d.WarrantyExpiry,
		CategoryID:     d.CategoryID,
		LocationID:     d.LocationID,
		DepartmentID:   d.DepartmentID,
		VendorID:       d.VendorID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain Asset.
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:        m.AssetID,
		Name:           m.Name,
		AssetTag:       m.AssetTag,
		SerialNumber:   m.SerialNumber,
		Description:    m.Description,
		Status:         domain.AssetStatus(m.Status),
		PurchaseDate:   m.PurchaseDate,
		PurchasePrice:  m.PurchasePrice,
		CurrentValue:   m.CurrentValue,
		WarrantyExpiry: m.WarrantyExpiry,
		CategoryID:     m.CategoryID,
		LocationID:     m.LocationID,
		DepartmentID:   m.DepartmentID,
		VendorID:       m.VendorID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssetSlice converts a slice of model Assets to domain Assets.
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}
