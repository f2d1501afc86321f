package site

import (
	"context"
	"fmt"
	"time"

	"github.com/kerjahub/attendance-backend-go/internal/domain/site"
)

// Service exposes the site-location singleton to the admin surface.
type Service interface {
	Get(ctx context.Context) (*site.LocationResponse, error)
	Update(ctx context.Context, req site.UpdateLocationRequest) (site.LocationResponse, error)
}

type SiteServiceImpl struct {
	sites site.Repository
}

func NewSiteService(sites site.Repository) Service {
	return &SiteServiceImpl{sites: sites}
}

// Get implements Service. Returns nil when no location is configured yet.
func (s *SiteServiceImpl) Get(ctx context.Context) (*site.LocationResponse, error) {
	loc, err := s.sites.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load site location: %w", err)
	}
	if loc == nil {
		return nil, nil
	}
	resp := mapLocationToResponse(*loc)
	return &resp, nil
}

// Update implements Service.
func (s *SiteServiceImpl) Update(ctx context.Context, req site.UpdateLocationRequest) (site.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return site.LocationResponse{}, err
	}

	saved, err := s.sites.Save(ctx, site.Location{
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	})
	if err != nil {
		return site.LocationResponse{}, fmt.Errorf("failed to save site location: %w", err)
	}

	return mapLocationToResponse(saved), nil
}

func mapLocationToResponse(loc site.Location) site.LocationResponse {
	return site.LocationResponse{
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		RadiusMeters: loc.RadiusMeters,
		UpdatedAt:    loc.UpdatedAt.Format(time.RFC3339),
	}
}
