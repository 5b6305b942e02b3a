package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// CalculateDepreciationRequest defines the accounting period for a
// depreciation run.
type CalculateDepreciationRequest struct {
	PeriodStart time.Time `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time `json:"periodEnd" binding:"required"`
}

// DepreciationEntryResponse is the API representation of a ledger entry.
type DepreciationEntryResponse struct {
	EntryID                 string          `json:"entryId"`
	AssetID                 string          `json:"assetId"`
	PeriodStart             time.Time       `json:"periodStart"`
	PeriodEnd               time.Time       `json:"periodEnd"`
	DepreciationAmount      decimal.Decimal `json:"depreciationAmount"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
	CreatedAt               time.Time       `json:"createdAt"`
}

// ToDepreciationEntryResponse converts a domain ledger entry to its API
// representation.
func ToDepreciationEntryResponse(entry domain.DepreciationEntry) DepreciationEntryResponse {
	return DepreciationEntryResponse{
		EntryID:                 entry.EntryID,
		AssetID:                 entry.AssetID,
		PeriodStart:             entry.PeriodStart,
		PeriodEnd:               entry.PeriodEnd,
		DepreciationAmount:      entry.DepreciationAmount,
		AccumulatedDepreciation: entry.AccumulatedDepreciation,
		BookValue:               entry.BookValue,
		CreatedAt:               entry.CreatedAt,
	}
}

// ToDepreciationEntryResponses converts a slice of domain ledger entries.
func ToDepreciationEntryResponses(entries []domain.DepreciationEntry) []DepreciationEntryResponse {
	responses := make([]DepreciationEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToDepreciationEntryResponse(entry))
	}
	return responses
}

// DepreciationSummaryRow is one asset's line in the depreciation report.
type DepreciationSummaryRow struct {
	AssetID                 string          `json:"assetId"`
	AssetName               string          `json:"assetName"`
	CategoryName            *string         `json:"categoryName,omitempty"`
	PurchasePrice           decimal.Decimal `json:"purchasePrice"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
}

// DepreciationReportResponse is the full depreciation report.
type DepreciationReportResponse struct {
	Rows               []DepreciationSummaryRow `json:"rows"`
	TotalPurchasePrice decimal.Decimal          `json:"totalPurchasePrice"`
	TotalAccumulated   decimal.Decimal          `json:"totalAccumulatedDepreciation"`
	TotalBookValue     decimal.Decimal          `json:"totalBookValue"`
}

// AssetStatusCount is one status bucket in the status report.
type AssetStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AssetStatusReportResponse is the asset counts by lifecycle status.
type AssetStatusReportResponse struct {
	Counts []AssetStatusCount `json:"counts"`
	Total  int64              `json:"total"`
}
