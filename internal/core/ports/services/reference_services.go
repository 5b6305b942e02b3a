package services

import (
	"context"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// LocationSvcFacade defines the interface for location operations.
type LocationSvcFacade interface {
	CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error)
	GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error)
	ListLocations(ctx context.Context, limit int, nextToken *string) ([]domain.Location, *string, error)
	UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, updaterUserID string) (*domain.Location, error)
	DeleteLocation(ctx context.Context, locationID string) error
}

// DepartmentSvcFacade defines the interface for department operations.
type DepartmentSvcFacade interface {
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorUserID string) (*domain.Department, error)
	GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
	ListDepartments(ctx context.Context, limit int, nextToken *string) ([]domain.Department, *string, error)
	UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, updaterUserID string) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, departmentID string) error
}

// VendorSvcFacade defines the interface for vendor operations.
type VendorSvcFacade interface {
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, limit int, nextToken *string) ([]domain.Vendor, *string, error)
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID string) error
}
