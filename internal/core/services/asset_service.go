package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
	"github.com/hecate-codex/asset_mgmt_app/internal/middleware"
)

var (
	ErrAssetAlreadyAssigned     = errors.New("asset is already assigned")
	ErrAssetNotAssignable       = errors.New("asset cannot be assigned from its current status")
	ErrAssetNotAssigned         = errors.New("asset is not currently assigned")
	ErrInvalidStatusTransition  = errors.New("invalid asset status transition")
	ErrInvalidAssetStatusFilter = errors.New("invalid asset status filter")
)

// assetService provides asset registry and lifecycle operations.
type assetService struct {
	assetRepo   portsrepo.AssetRepositoryWithTx
	categorySvc portssvc.CategorySvcFacade
}

// NewAssetService creates a new AssetService.
func NewAssetService(assetRepo portsrepo.AssetRepositoryWithTx, categorySvc portssvc.CategorySvcFacade) portssvc.AssetSvcFacade {
	return &assetService{
		assetRepo:   assetRepo,
		categorySvc: categorySvc,
	}
}

// Ensure assetService implements the portssvc.AssetSvcFacade interface
var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest, creatorUserID string) (*domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CategoryID != nil {
		if _, err := s.categorySvc.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewAppError(400, fmt.Sprintf("category %s does not exist", *req.CategoryID), apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to verify category for new asset: %w", err)
		}
	}

	now := time.Now()
	asset := domain.Asset{
		AssetID:        uuid.NewString(),
		Name:           req.Name,
		AssetTag:       req.AssetTag,
		SerialNumber:   req.SerialNumber,
		Description:    req.Description,
		Status:         domain.Available,
		CategoryID:     req.CategoryID,
		LocationID:     req.LocationID,
		DepartmentID:   req.DepartmentID,
		VendorID:       req.VendorID,
		PurchasePrice:  req.PurchasePrice,
		PurchaseDate:   req.PurchaseDate,
		WarrantyExpiry: req.WarrantyExpiry,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	// Book value starts at cost and only moves via the depreciation ledger.
	if req.PurchasePrice != nil {
		currentValue := *req.PurchasePrice
		asset.CurrentValue = &currentValue
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		logger.Error("failed to save new asset", slog.String("asset_tag", req.AssetTag), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	logger.Info("asset created", slog.String("asset_id", asset.AssetID), slog.String("asset_tag", asset.AssetTag))
	return &asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", assetID, err)
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, params dto.ListAssetsParams) ([]domain.Asset, *string, error) {
	filter := portsrepo.AssetFilter{
		CategoryID:   params.CategoryID,
		LocationID:   params.LocationID,
		DepartmentID: params.DepartmentID,
	}
	if params.Status != nil {
		status := domain.AssetStatus(*params.Status)
		if !status.IsValid() {
			return nil, nil, fmt.Errorf("%w: %s", ErrInvalidAssetStatusFilter, *params.Status)
		}
		filter.Status = &status
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	assets, nextToken, err := s.assetRepo.ListAssets(ctx, filter, limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return assets, nextToken, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, updaterUserID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset %s for update: %w", assetID, err)
	}

	if req.CategoryID != nil && (asset.CategoryID == nil || *asset.CategoryID != *req.CategoryID) {
		if _, err := s.categorySvc.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewAppError(400, fmt.Sprintf("category %s does not exist", *req.CategoryID), apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to verify category for asset update: %w", err)
		}
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.SerialNumber != nil {
		asset.SerialNumber = req.SerialNumber
	}
	if req.Description != nil {
		asset.Description = req.Description
	}
	if req.CategoryID != nil {
		asset.CategoryID = req.CategoryID
	}
	if req.LocationID != nil {
		asset.LocationID = req.LocationID
	}
	if req.DepartmentID != nil {
		asset.DepartmentID = req.DepartmentID
	}
	if req.VendorID != nil {
		asset.VendorID = req.VendorID
	}
	if req.PurchasePrice != nil {
		asset.PurchasePrice = req.PurchasePrice
	}
	if req.PurchaseDate != nil {
		asset.PurchaseDate = req.PurchaseDate
	}
	if req.WarrantyExpiry != nil {
		asset.WarrantyExpiry = req.WarrantyExpiry
	}
	asset.LastUpdatedAt = time.Now()
	asset.LastUpdatedBy = updaterUserID

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		return nil, fmt.Errorf("failed to update asset %s: %w", assetID, err)
	}
	return asset, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID string) error {
	if err := s.assetRepo.DeleteAsset(ctx, assetID); err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	return nil
}

// AssignAsset hands an asset to a user. Assignment is legal from AVAILABLE
// and IN_MAINTENANCE; an asset that is already ASSIGNED yields
// ErrAssetAlreadyAssigned and every other status yields ErrAssetNotAssignable.
func (s *assetService) AssignAsset(ctx context.Context, assetID string, req dto.AssignAssetRequest, updaterUserID string) (*domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset %s for assignment: %w", assetID, err)
	}
	if asset.Status == domain.Assigned {
		return nil, fmt.Errorf("%w: asset %s", ErrAssetAlreadyAssigned, assetID)
	}
	if !asset.Status.CanAssign() {
		return nil, fmt.Errorf("%w: asset %s is %s", ErrAssetNotAssignable, assetID, asset.Status)
	}

	assignment := domain.Assignment{
		AssignmentID: uuid.NewString(),
		AssetID:      assetID,
		AssigneeID:   req.AssigneeID,
		AssigneeName: req.AssigneeName,
		AssignedAt:   time.Now(),
		Notes:        req.Notes,
	}

	// The repository re-checks the status under a row lock, so a concurrent
	// assignment loses here even though the check above passed.
	if err := s.assetRepo.AssignAsset(ctx, assignment, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: asset %s", ErrAssetAlreadyAssigned, assetID)
		}
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil, fmt.Errorf("%w: asset %s", ErrAssetNotAssignable, assetID)
		}
		logger.Error("failed to assign asset", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to assign asset %s: %w", assetID, err)
	}

	logger.Info("asset assigned", slog.String("asset_id", assetID), slog.String("assignee_id", req.AssigneeID))
	return s.GetAssetByID(ctx, assetID)
}

// ReturnAsset takes an assigned asset back. Return is legal only from
// ASSIGNED. When return notes are given they are appended to the open
// assignment's notes. A missing open assignment on an ASSIGNED asset is
// repaired rather than rejected: the status transition still happens.
func (s *assetService) ReturnAsset(ctx context.Context, assetID string, req dto.ReturnAssetRequest, updaterUserID string) (*domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset %s for return: %w", assetID, err)
	}
	if asset.Status != domain.Assigned {
		return nil, fmt.Errorf("%w: asset %s is %s", ErrAssetNotAssigned, assetID, asset.Status)
	}

	openAssignment, err := s.assetRepo.FindOpenAssignment(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to find open assignment for asset %s: %w", assetID, err)
		}
		logger.Warn("assigned asset has no open assignment, repairing status", slog.String("asset_id", assetID))
		openAssignment = nil
	}

	var mergedNotes *string
	if openAssignment != nil && req.Notes != nil {
		merged := "Return: " + *req.Notes
		if openAssignment.Notes != nil && *openAssignment.Notes != "" {
			merged = *openAssignment.Notes + "\n" + merged
		}
		mergedNotes = &merged
	}

	if err := s.assetRepo.ReturnAsset(ctx, assetID, mergedNotes, time.Now(), updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil, fmt.Errorf("%w: asset %s", ErrAssetNotAssigned, assetID)
		}
		logger.Error("failed to return asset", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to return asset %s: %w", assetID, err)
	}

	logger.Info("asset returned", slog.String("asset_id", assetID))
	return s.GetAssetByID(ctx, assetID)
}

// SetAssetStatus moves an asset directly between non-assignment statuses.
// ASSIGNED can only be entered via AssignAsset and left via ReturnAsset,
// DISPOSED is terminal, and RETIRED assets can only move on to DISPOSED.
func (s *assetService) SetAssetStatus(ctx context.Context, assetID string, status domain.AssetStatus, updaterUserID string) (*domain.Asset, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %s", ErrInvalidStatusTransition, status)
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset %s for status change: %w", assetID, err)
	}

	switch {
	case status == domain.Assigned || asset.Status == domain.Assigned:
		return nil, fmt.Errorf("%w: %s -> %s, use assign/return", ErrInvalidStatusTransition, asset.Status, status)
	case asset.Status == domain.Disposed:
		return nil, fmt.Errorf("%w: %s is terminal", ErrInvalidStatusTransition, asset.Status)
	case asset.Status == domain.Retired && status != domain.Disposed:
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, asset.Status, status)
	}

	asset.Status = status
	asset.LastUpdatedAt = time.Now()
	asset.LastUpdatedBy = updaterUserID
	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		return nil, fmt.Errorf("failed to change status of asset %s: %w", assetID, err)
	}
	return asset, nil
}

func (s *assetService) ListAssignments(ctx context.Context, assetID string) ([]domain.Assignment, error) {
	if _, err := s.assetRepo.FindAssetByID(ctx, assetID); err != nil {
		return nil, fmt.Errorf("failed to find asset %s for assignment history: %w", assetID, err)
	}
	assignments, err := s.assetRepo.ListAssignmentsByAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for asset %s: %w", assetID, err)
	}
	if assignments == nil {
		assignments = []domain.Assignment{}
	}
	return assignments, nil
}
