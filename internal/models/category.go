package models

// DepreciationMethod mirrors the depreciation method enum stored in categories.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "STRAIGHT_LINE"
	DecliningBalance DepreciationMethod = "DECLINING_BALANCE"
	NoDepreciation   DepreciationMethod = "NONE"
)

// Category is the database representation of an asset category and its
// depreciation policy.
type Category struct {
	CategoryID          string             `json:"categoryID"`
	Name                string             `json:"name"`
	Description         *string            `json:"description"`
	DepreciationMethod  DepreciationMethod `json:"depreciationMethod"`
	UsefulLifeYears     *int               `json:"usefulLifeYears"`
	SalvageValuePercent int                `json:"salvageValuePercent"`
	ParentCategoryID    *string            `json:"parentCategoryID"`
	AuditFields
}
