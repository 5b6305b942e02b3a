package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationEntry is one immutable row of an asset's depreciation ledger.
// Entries are append-only and ordered by PeriodEnd; the most recent entry by
// PeriodEnd is the authoritative current depreciation state. Only the
// depreciation engine creates entries; nothing updates or deletes them.
type DepreciationEntry struct {
	EntryID                 string          `json:"entryID"` // Primary Key (e.g., UUID)
	AssetID                 string          `json:"assetID"` // FK -> assets (Not Null)
	PeriodStart             time.Time       `json:"periodStart"`
	PeriodEnd               time.Time       `json:"periodEnd"`             // Inclusive; >= PeriodStart
	DepreciationAmount      decimal.Decimal `json:"depreciationAmount"`    // This period's reduction
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"` // Running total since acquisition
	BookValue               decimal.Decimal `json:"bookValue"`             // Value after this entry
	AuditFields
}
