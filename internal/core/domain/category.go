package domain

// DepreciationMethod selects the strategy used to depreciate an asset's value.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "STRAIGHT_LINE"
	DecliningBalance DepreciationMethod = "DECLINING_BALANCE"
	NoDepreciation   DepreciationMethod = "NONE"
)

// IsValid reports whether the method is one of the known strategies.
func (m DepreciationMethod) IsValid() bool {
	switch m {
	case StraightLine, DecliningBalance, NoDepreciation:
		return true
	}
	return false
}

// Category groups assets and carries their depreciation policy.
// ParentCategoryID is a back-reference only; children are found by lookup,
// never held as owning pointers.
type Category struct {
	CategoryID          string             `json:"categoryID"` // Primary Key (e.g., UUID)
	Name                string             `json:"name"`       // Not Null
	Description         *string            `json:"description"`
	DepreciationMethod  DepreciationMethod `json:"depreciationMethod"`  // Default: STRAIGHT_LINE
	UsefulLifeYears     *int               `json:"usefulLifeYears"`     // Positive; nil means unset
	SalvageValuePercent int                `json:"salvageValuePercent"` // 0-100, fraction of purchase price
	ParentCategoryID    *string            `json:"parentCategoryID"`    // Nullable self-reference
	AuditFields
}
