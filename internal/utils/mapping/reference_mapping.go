package mapping

import (
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/models"
)

// ToModelLocation converts a domain Location to a model Location.
func ToModelLocation(d domain.Location) models.Location {
	return models.Location{
		LocationID:       d.LocationID,
		Name:             d.Name,
		Description:      d.Description,
		Address:          d.Address,
		ParentLocationID: d.ParentLocationID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLocation converts a model Location to a domain Location.
func ToDomainLocation(m models.Location) domain.Location {
	return domain.Location{
		LocationID:       m.LocationID,
		Name:             m.Name,
		Description:      m.Description,
		Address:          m.Address,
		ParentLocationID: m.ParentLocationID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDepartment converts a domain Department to a model Department.
func ToModelDepartment(d domain.Department) models.Department {
	return models.Department{
		DepartmentID:       d.DepartmentID,
		Name:               d.Name,
		Description:        d.Description,
		ParentDepartmentID: d.ParentDepartmentID,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepartment converts a model Department to a domain Department.
func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID:       m.DepartmentID,
		Name:               m.Name,
		Description:        m.Description,
		ParentDepartmentID: m.ParentDepartmentID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVendor converts a domain Vendor to a model Vendor.
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:     d.VendorID,
		Name:         d.Name,
		ContactName:  d.ContactName,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		Website:      d.Website,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVendor converts a model Vendor to a domain Vendor.
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:     m.VendorID,
		Name:         m.Name,
		ContactName:  m.ContactName,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		Website:      m.Website,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLocationSlice converts a slice of location models.
func ToDomainLocationSlice(ms []models.Location) []domain.Location {
	ds := make([]domain.Location, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, ToDomainLocation(m))
	}
	return ds
}

// ToDomainDepartmentSlice converts a slice of department models.
func ToDomainDepartmentSlice(ms []models.Department) []domain.Department {
	ds := make([]domain.Department, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, ToDomainDepartment(m))
	}
	return ds
}

// ToDomainVendorSlice converts a slice of vendor models.
func ToDomainVendorSlice(ms []models.Vendor) []domain.Vendor {
	ds := make([]domain.Vendor, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, ToDomainVendor(m))
	}
	return ds
}
