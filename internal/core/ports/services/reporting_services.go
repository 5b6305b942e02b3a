package services

import (
	"context"

	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// ReportingSvcFacade defines the interface for aggregate reports.
type ReportingSvcFacade interface {
	// GetDepreciationReport returns the per-asset depreciation summary with
	// fleet-wide totals.
	GetDepreciationReport(ctx context.Context) (*dto.DepreciationReportResponse, error)

	// GetAssetStatusReport returns asset counts by lifecycle status.
	GetAssetStatusReport(ctx context.Context) (*dto.AssetStatusReportResponse, error)
}
