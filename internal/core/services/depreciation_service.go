package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
	"github.com/hecate-codex/asset_mgmt_app/internal/middleware"
	"github.com/hecate-codex/asset_mgmt_app/internal/utils/depreciation"
)

var (
	ErrMissingPurchasePrice      = errors.New("asset has no purchase price")
	ErrMissingCategory           = errors.New("asset has no category")
	ErrDepreciationNotConfigured = errors.New("asset category has no depreciation method")
	ErrFullyDepreciated          = errors.New("asset is fully depreciated")
	ErrInvalidPeriod             = errors.New("period end must not be before period start")
)

// Applied when a category leaves useful life unset.
const defaultUsefulLifeYears = 5

// depreciationService maintains the append-only depreciation ledger.
type depreciationService struct {
	assetRepo        portsrepo.AssetRepositoryWithTx
	depreciationRepo portsrepo.DepreciationRepositoryFacade
}

// NewDepreciationService creates a new DepreciationService.
func NewDepreciationService(assetRepo portsrepo.AssetRepositoryWithTx, depreciationRepo portsrepo.DepreciationRepositoryFacade) portssvc.DepreciationSvcFacade {
	return &depreciationService{
		assetRepo:        assetRepo,
		depreciationRepo: depreciationRepo,
	}
}

// Ensure depreciationService implements the portssvc.DepreciationSvcFacade interface
var _ portssvc.DepreciationSvcFacade = (*depreciationService)(nil)

// CalculateDepreciation computes and persists the asset's next ledger entry.
//
// The opening book value comes from the latest ledger entry, or the purchase
// price when the ledger is empty. The written amount is the difference between
// the opening and closing book values, so a raw amount that would cross the
// salvage floor is clamped in the final period.
func (s *depreciationService) CalculateDepreciation(ctx context.Context, assetID string, req dto.CalculateDepreciationRequest, creatorUserID string) (*domain.DepreciationEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidPeriod, req.PeriodStart.Format("2006-01-02"), req.PeriodEnd.Format("2006-01-02"))
	}

	asset, err := s.assetRepo.FindAssetWithCategory(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset %s for depreciation: %w", assetID, err)
	}
	if asset.PurchasePrice == nil {
		return nil, fmt.Errorf("%w: asset %s", ErrMissingPurchasePrice, assetID)
	}
	if asset.Category == nil {
		return nil, fmt.Errorf("%w: asset %s", ErrMissingCategory, assetID)
	}
	category := asset.Category
	if category.DepreciationMethod == domain.NoDepreciation {
		return nil, fmt.Errorf("%w: asset %s category %s", ErrDepreciationNotConfigured, assetID, category.CategoryID)
	}

	usefulLife := defaultUsefulLifeYears
	if category.UsefulLifeYears != nil {
		usefulLife = *category.UsefulLifeYears
	}
	salvageValue := depreciation.SalvageValue(*asset.PurchasePrice, category.SalvageValuePercent)

	openingBook := *asset.PurchasePrice
	accumulated := decimal.Zero
	latest, err := s.depreciationRepo.FindLatestEntryByAssetID(ctx, assetID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find latest ledger entry for asset %s: %w", assetID, err)
	}
	if latest != nil {
		openingBook = latest.BookValue
		accumulated = latest.AccumulatedDepreciation
	}

	if openingBook.LessThanOrEqual(salvageValue) {
		return nil, fmt.Errorf("%w: asset %s book value %s is at its salvage floor %s",
			ErrFullyDepreciated, assetID, openingBook.String(), salvageValue.String())
	}

	var rawAmount decimal.Decimal
	switch category.DepreciationMethod {
	case domain.StraightLine:
		rawAmount = depreciation.StraightLineAmount(*asset.PurchasePrice, salvageValue, usefulLife, req.PeriodStart, req.PeriodEnd)
	case domain.DecliningBalance:
		rawAmount = depreciation.DecliningBalanceAmount(openingBook, usefulLife, req.PeriodStart, req.PeriodEnd)
	default:
		return nil, fmt.Errorf("%w: unknown method %s", ErrDepreciationNotConfigured, category.DepreciationMethod)
	}

	closingBook := openingBook.Sub(rawAmount)
	if closingBook.LessThan(salvageValue) {
		closingBook = salvageValue
	}
	amount := openingBook.Sub(closingBook)

	now := time.Now()
	entry := domain.DepreciationEntry{
		EntryID:                 uuid.NewString(),
		AssetID:                 assetID,
		PeriodStart:             req.PeriodStart,
		PeriodEnd:               req.PeriodEnd,
		DepreciationAmount:      amount,
		AccumulatedDepreciation: accumulated.Add(amount),
		BookValue:               closingBook,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.depreciationRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("failed to save ledger entry", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save ledger entry for asset %s: %w", assetID, err)
	}

	logger.Info("depreciation recorded",
		slog.String("asset_id", assetID),
		slog.String("amount", amount.String()),
		slog.String("book_value", closingBook.String()))
	return &entry, nil
}

func (s *depreciationService) GetDepreciationHistory(ctx context.Context, assetID string) ([]domain.DepreciationEntry, error) {
	if _, err := s.assetRepo.FindAssetByID(ctx, assetID); err != nil {
		return nil, fmt.Errorf("failed to find asset %s for ledger history: %w", assetID, err)
	}
	entries, err := s.depreciationRepo.ListEntriesByAssetID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for asset %s: %w", assetID, err)
	}
	if entries == nil {
		entries = []domain.DepreciationEntry{}
	}
	return entries, nil
}
