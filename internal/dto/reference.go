package dto

import (
	"time"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// CreateLocationRequest defines the payload for creating a location.
type CreateLocationRequest struct {
	Name             string  `json:"name" binding:"required,max=255"`
	Description      *string `json:"description,omitempty"`
	Address          *string `json:"address,omitempty"`
	ParentLocationID *string `json:"parentLocationId,omitempty"`
}

// UpdateLocationRequest defines the payload for updating a location.
type UpdateLocationRequest struct {
	Name             *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Description      *string `json:"description,omitempty"`
	Address          *string `json:"address,omitempty"`
	ParentLocationID *string `json:"parentLocationId,omitempty"`
}

// LocationResponse is the API representation of a location.
type LocationResponse struct {
	LocationID       string    `json:"locationId"`
	Name             string    `json:"name"`
	Description      *string   `json:"description,omitempty"`
	Address          *string   `json:"address,omitempty"`
	ParentLocationID *string   `json:"parentLocationId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToLocationResponse converts a domain location.
func ToLocationResponse(location domain.Location) LocationResponse {
	return LocationResponse{
		LocationID:       location.LocationID,
		Name:             location.Name,
		Description:      location.Description,
		Address:          location.Address,
		ParentLocationID: location.ParentLocationID,
		CreatedAt:        location.CreatedAt,
	}
}

// ToLocationResponses converts a slice of domain locations.
func ToLocationResponses(locations []domain.Location) []LocationResponse {
	responses := make([]LocationResponse, 0, len(locations))
	for _, location := range locations {
		responses = append(responses, ToLocationResponse(location))
	}
	return responses
}

// ListLocationsResponse is a paginated page of locations.
type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// CreateDepartmentRequest defines the payload for creating a department.
type CreateDepartmentRequest struct {
	Name               string  `json:"name" binding:"required,max=255"`
	Description        *string `json:"description,omitempty"`
	ParentDepartmentID *string `json:"parentDepartmentId,omitempty"`
}

// UpdateDepartmentRequest defines the payload for updating a department.
type UpdateDepartmentRequest struct {
	Name               *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Description        *string `json:"description,omitempty"`
	ParentDepartmentID *string `json:"parentDepartmentId,omitempty"`
}

// DepartmentResponse is the API representation of a department.
type DepartmentResponse struct {
	DepartmentID       string    `json:"departmentId"`
	Name               string    `json:"name"`
	Description        *string   `json:"description,omitempty"`
	ParentDepartmentID *string   `json:"parentDepartmentId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToDepartmentResponse converts a domain department.
func ToDepartmentResponse(department domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID:       department.DepartmentID,
		Name:               department.Name,
		Description:        department.Description,
		ParentDepartmentID: department.ParentDepartmentID,
		CreatedAt:          department.CreatedAt,
	}
}

// ToDepartmentResponses converts a slice of domain departments.
func ToDepartmentResponses(departments []domain.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		responses = append(responses, ToDepartmentResponse(department))
	}
	return responses
}

// ListDepartmentsResponse is a paginated page of departments.
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// CreateVendorRequest defines the payload for creating a vendor.
type CreateVendorRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	ContactName  *string `json:"contactName,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	Website      *string `json:"website,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// UpdateVendorRequest defines the payload for updating a vendor.
type UpdateVendorRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=255"`
	ContactName  *string `json:"contactName,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	Website      *string `json:"website,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// VendorResponse is the API representation of a vendor.
type VendorResponse struct {
	VendorID     string    `json:"vendorId"`
	Name         string    `json:"name"`
	ContactName  *string   `json:"contactName,omitempty"`
	ContactEmail *string   `json:"contactEmail,omitempty"`
	ContactPhone *string   `json:"contactPhone,omitempty"`
	Website      *string   `json:"website,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToVendorResponse converts a domain vendor.
func ToVendorResponse(vendor domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:     vendor.VendorID,
		Name:         vendor.Name,
		ContactName:  vendor.ContactName,
		ContactEmail: vendor.ContactEmail,
		ContactPhone: vendor.ContactPhone,
		Website:      vendor.Website,
		Notes:        vendor.Notes,
		CreatedAt:    vendor.CreatedAt,
	}
}

// ToVendorResponses converts a slice of domain vendors.
func ToVendorResponses(vendors []domain.Vendor) []VendorResponse {
	responses := make([]VendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		responses = append(responses, ToVendorResponse(vendor))
	}
	return responses
}

// ListVendorsResponse is a paginated page of vendors.
type ListVendorsResponse struct {
	Vendors   []VendorResponse `json:"vendors"`
	NextToken *string          `json:"nextToken,omitempty"`
}
