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
	ErrParentLocationNotFound = errors.New("parent location not found")
	ErrLocationSelfParent     = errors.New("location cannot be its own parent")
)

// locationService provides location operations.
type locationService struct {
	locationRepo portsrepo.LocationRepositoryFacade
}

// NewLocationService creates a new LocationService.
func NewLocationService(locationRepo portsrepo.LocationRepositoryFacade) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: locationRepo}
}

// Ensure locationService implements the portssvc.LocationSvcFacade interface
var _ portssvc.LocationSvcFacade = (*locationService)(nil)

func (s *locationService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error) {
	if req.ParentLocationID != nil {
		if _, err := s.locationRepo.FindLocationByID(ctx, *req.ParentLocationID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrParentLocationNotFound, *req.ParentLocationID)
			}
			return nil, fmt.Errorf("failed to verify parent location: %w", err)
		}
	}

	now := time.Now()
	location := domain.Location{
		LocationID:       uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		Address:          req.Address,
		ParentLocationID: req.ParentLocationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.locationRepo.SaveLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return &location, nil
}

func (s *locationService) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location %s: %w", locationID, err)
	}
	return location, nil
}

func (s *locationService) ListLocations(ctx context.Context, limit int, nextToken *string) ([]domain.Location, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	locations, token, err := s.locationRepo.ListLocations(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list locations: %w", err)
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	return locations, token, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, updaterUserID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find location %s for update: %w", locationID, err)
	}

	if req.ParentLocationID != nil {
		if *req.ParentLocationID == locationID {
			return nil, ErrLocationSelfParent
		}
		if _, err := s.locationRepo.FindLocationByID(ctx, *req.ParentLocationID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrParentLocationNotFound, *req.ParentLocationID)
			}
			return nil, fmt.Errorf("failed to verify parent location: %w", err)
		}
		location.ParentLocationID = req.ParentLocationID
	}
	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Description != nil {
		location.Description = req.Description
	}
	if req.Address != nil {
		location.Address = req.Address
	}
	location.LastUpdatedAt = time.Now()
	location.LastUpdatedBy = updaterUserID

	if err := s.locationRepo.UpdateLocation(ctx, *location); err != nil {
		return nil, fmt.Errorf("failed to update location %s: %w", locationID, err)
	}
	return location, nil
}

func (s *locationService) DeleteLocation(ctx context.Context, locationID string) error {
	if err := s.locationRepo.DeleteLocation(ctx, locationID); err != nil {
		return fmt.Errorf("failed to delete location %s: %w", locationID, err)
	}
	return nil
}
