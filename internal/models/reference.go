package models

// Location is the database representation of a location.
type Location struct {
	LocationID       string  `json:"locationID"`
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	Address          *string `json:"address"`
	ParentLocationID *string `json:"parentLocationID"`
	AuditFields
}

// Department is the database representation of a department.
type Department struct {
	DepartmentID       string  `json:"departmentID"`
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	ParentDepartmentID *string `json:"parentDepartmentID"`
	AuditFields
}

// Vendor is the database representation of a vendor.
type Vendor struct {
	VendorID     string  `json:"vendorID"`
	Name         string  `json:"name"`
	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Website      *string `json:"website"`
	Notes        *string `json:"notes"`
	AuditFields
}
