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
	ErrParentDepartmentNotFound = errors.New("parent department not found")
	ErrDepartmentSelfParent     = errors.New("department cannot be its own parent")
)

// departmentService provides department operations.
type departmentService struct {
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepositoryFacade) portssvc.DepartmentSvcFacade {
	return &departmentService{departmentRepo: departmentRepo}
}

// Ensure departmentService implements the portssvc.DepartmentSvcFacade interface
var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

func (s *departmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorUserID string) (*domain.Department, error) {
	if req.ParentDepartmentID != nil {
		if _, err := s.departmentRepo.FindDepartmentByID(ctx, *req.ParentDepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrParentDepartmentNotFound, *req.ParentDepartmentID)
			}
			return nil, fmt.Errorf("failed to verify parent department: %w", err)
		}
	}

	now := time.Now()
	department := domain.Department{
		DepartmentID:       uuid.NewString(),
		Name:               req.Name,
		Description:        req.Description,
		ParentDepartmentID: req.ParentDepartmentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return &department, nil
}

func (s *departmentService) GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get department %s: %w", departmentID, err)
	}
	return department, nil
}

func (s *departmentService) ListDepartments(ctx context.Context, limit int, nextToken *string) ([]domain.Department, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	departments, token, err := s.departmentRepo.ListDepartments(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list departments: %w", err)
	}
	if departments == nil {
		departments = []domain.Department{}
	}
	return departments, token, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, updaterUserID string) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find department %s for update: %w", departmentID, err)
	}

	if req.ParentDepartmentID != nil {
		if *req.ParentDepartmentID == departmentID {
			return nil, ErrDepartmentSelfParent
		}
		if _, err := s.departmentRepo.FindDepartmentByID(ctx, *req.ParentDepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrParentDepartmentNotFound, *req.ParentDepartmentID)
			}
			return nil, fmt.Errorf("failed to verify parent department: %w", err)
		}
		department.ParentDepartmentID = req.ParentDepartmentID
	}
	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = req.Description
	}
	department.LastUpdatedAt = time.Now()
	department.LastUpdatedBy = updaterUserID

	if err := s.departmentRepo.UpdateDepartment(ctx, *department); err != nil {
		return nil, fmt.Errorf("failed to update department %s: %w", departmentID, err)
	}
	return department, nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	if err := s.departmentRepo.DeleteDepartment(ctx, departmentID); err != nil {
		return fmt.Errorf("failed to delete department %s: %w", departmentID, err)
	}
	return nil
}
