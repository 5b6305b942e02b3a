package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

var (
	ErrInvalidDepreciationMethod = errors.New("invalid depreciation method")
	ErrParentCategoryNotFound    = errors.New("parent category not found")
	ErrCategorySelfParent        = errors.New("category cannot be its own parent")
)

// categoryService provides category and depreciation policy operations.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

// Ensure categoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	method := domain.DepreciationMethod(req.DepreciationMethod)
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDepreciationMethod, req.DepreciationMethod)
	}
	if req.ParentCategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.ParentCategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrParentCategoryNotFound, *req.ParentCategoryID)
			}
			return nil, fmt.Errorf("failed to verify parent category: %w", err)
		}
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:          uuid.NewString(),
		Name:                req.Name,
		Description:         req.Description,
		ParentCategoryID:    req.ParentCategoryID,
		DepreciationMethod:  method,
		UsefulLifeYears:     req.UsefulLifeYears,
		SalvageValuePercent: req.SalvageValuePercent,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, limit int, nextToken *string) ([]domain.Category, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	categories, token, err := s.categoryRepo.ListCategories(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, token, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s for update: %w", categoryID, err)
	}

	if req.ParentCategoryID != nil {
		if *req.ParentCategoryID == categoryID {
			return nil, ErrCategorySelfParent
		}
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.ParentCategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrParentCategoryNotFound, *req.ParentCategoryID)
			}
			return nil, fmt.Errorf("failed to verify parent category: %w", err)
		}
		category.ParentCategoryID = req.ParentCategoryID
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.DepreciationMethod != nil {
		method := domain.DepreciationMethod(*req.DepreciationMethod)
		if !method.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDepreciationMethod, *req.DepreciationMethod)
		}
		category.DepreciationMethod = method
	}
	if req.UsefulLifeYears != nil {
		category.UsefulLifeYears = req.UsefulLifeYears
	}
	if req.SalvageValuePercent != nil {
		category.SalvageValuePercent = *req.SalvageValuePercent
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = updaterUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	return nil
}
