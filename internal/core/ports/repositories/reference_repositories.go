package repositories

import (
	"context"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// LocationRepositoryFacade defines persistence operations for locations.
type LocationRepositoryFacade interface {
	SaveLocation(ctx context.Context, location domain.Location) error
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)
	ListLocations(ctx context.Context, limit int, nextToken *string) ([]domain.Location, *string, error)
	UpdateLocation(ctx context.Context, location domain.Location) error
	DeleteLocation(ctx context.Context, locationID string) error
}

// DepartmentRepositoryFacade defines persistence operations for departments.
type DepartmentRepositoryFacade interface {
	SaveDepartment(ctx context.Context, department domain.Department) error
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
	ListDepartments(ctx context.Context, limit int, nextToken *string) ([]domain.Department, *string, error)
	UpdateDepartment(ctx context.Context, department domain.Department) error
	DeleteDepartment(ctx context.Context, departmentID string) error
}

// VendorRepositoryFacade defines persistence operations for vendors.
type VendorRepositoryFacade interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, limit int, nextToken *string) ([]domain.Vendor, *string, error)
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error
	DeleteVendor(ctx context.Context, vendorID string) error
}
