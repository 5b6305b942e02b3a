package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// reportingService builds aggregate reports over the asset fleet.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDepreciationReport(ctx context.Context) (*dto.DepreciationReportResponse, error) {
	rows, err := s.reportingRepo.GetDepreciationSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build depreciation report: %w", err)
	}
	if rows == nil {
		rows = []dto.DepreciationSummaryRow{}
	}

	report := dto.DepreciationReportResponse{
		Rows:               rows,
		TotalPurchasePrice: decimal.Zero,
		TotalAccumulated:   decimal.Zero,
		TotalBookValue:     decimal.Zero,
	}
	for _, row := range rows {
		report.TotalPurchasePrice = report.TotalPurchasePrice.Add(row.PurchasePrice)
		report.TotalAccumulated = report.TotalAccumulated.Add(row.AccumulatedDepreciation)
		report.TotalBookValue = report.TotalBookValue.Add(row.BookValue)
	}
	return &report, nil
}

func (s *reportingService) GetAssetStatusReport(ctx context.Context) (*dto.AssetStatusReportResponse, error) {
	counts, err := s.reportingRepo.GetAssetCountsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build status report: %w", err)
	}
	if counts == nil {
		counts = []dto.AssetStatusCount{}
	}

	report := dto.AssetStatusReportResponse{Counts: counts}
	for _, count := range counts {
		report.Total += count.Count
	}
	return &report, nil
}
