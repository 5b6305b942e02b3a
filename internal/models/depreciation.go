package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationEntry is the database representation of one ledger row.
type DepreciationEntry struct {
	EntryID                 string          `json:"entryID"`
	AssetID                 string          `json:"assetID"`
	PeriodStart             time.Time       `json:"periodStart"`
	PeriodEnd               time.Time       `json:"periodEnd"`
	DepreciationAmount      decimal.Decimal `json:"depreciationAmount"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
	AuditFields
}
