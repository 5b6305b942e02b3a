package domain

// Location is a place assets live. ParentLocationID models the site hierarchy
// as a back-reference; children are found by lookup.
type Location struct {
	LocationID       string  `json:"locationID"` // Primary Key (e.g., UUID)
	Name             string  `json:"name"`       // Not Null
	Description      *string `json:"description"`
	Address          *string `json:"address"`
	ParentLocationID *string `json:"parentLocationID"` // Nullable self-reference
	AuditFields
}

// Department is an organisational unit that can own assets.
type Department struct {
	DepartmentID       string  `json:"departmentID"` // Primary Key (e.g., UUID)
	Name               string  `json:"name"`         // Not Null
	Description        *string `json:"description"`
	ParentDepartmentID *string `json:"parentDepartmentID"` // Nullable self-reference
	AuditFields
}

// Vendor is a supplier assets were purchased from.
type Vendor struct {
	VendorID     string  `json:"vendorID"` // Primary Key (e.g., UUID)
	Name         string  `json:"name"`     // Not Null
	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Website      *string `json:"website"`
	Notes        *string `json:"notes"`
	AuditFields
}
