package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// vendorService provides vendor operations.
type vendorService struct {
	vendorRepo portsrepo.VendorRepositoryFacade
}

// NewVendorService creates a new VendorService.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo}
}

// Ensure vendorService implements the portssvc.VendorSvcFacade interface
var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	now := time.Now()
	vendor := domain.Vendor{
		VendorID:     uuid.NewString(),
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Website:      req.Website,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return &vendor, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor %s: %w", vendorID, err)
	}
	return vendor, nil
}

func (s *vendorService) ListVendors(ctx context.Context, limit int, nextToken *string) ([]domain.Vendor, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	vendors, token, err := s.vendorRepo.ListVendors(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	if vendors == nil {
		vendors = []domain.Vendor{}
	}
	return vendors, token, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor %s for update: %w", vendorID, err)
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ContactName != nil {
		vendor.ContactName = req.ContactName
	}
	if req.ContactEmail != nil {
		vendor.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != nil {
		vendor.ContactPhone = req.ContactPhone
	}
	if req.Website != nil {
		vendor.Website = req.Website
	}
	if req.Notes != nil {
		vendor.Notes = req.Notes
	}
	vendor.LastUpdatedAt = time.Now()
	vendor.LastUpdatedBy = updaterUserID

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor %s: %w", vendorID, err)
	}
	return vendor, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, vendorID string) error {
	if err := s.vendorRepo.DeleteVendor(ctx, vendorID); err != nil {
		return fmt.Errorf("failed to delete vendor %s: %w", vendorID, err)
	}
	return nil
}
