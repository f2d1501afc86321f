package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/attendance-backend-go/internal/domain/site"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/database"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.Repository {
	return &siteRepository{db: db}
}

// Get implements site.Repository. The site location is a singleton row.
func (s *siteRepository) Get(ctx context.Context) (*site.Location, error) {
	q := database.QuerierFrom(ctx, s.db)

	query := `
		SELECT latitude, longitude, radius_meters, updated_at
		FROM site_locations
		WHERE id = 1
	`

	var loc site.Location
	err := q.QueryRow(ctx, query).Scan(
		&loc.Latitude, &loc.Longitude, &loc.RadiusMeters, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site location: %w", err)
	}

	return &loc, nil
}

// Save implements site.Repository.
func (s *siteRepository) Save(ctx context.Context, loc site.Location) (site.Location, error) {
	q := database.QuerierFrom(ctx, s.db)

	query := `
		INSERT INTO site_locations (id, latitude, longitude, radius_meters, updated_at)
		VALUES (1, $1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE
		SET latitude = EXCLUDED.latitude,
		    longitude = EXCLUDED.longitude,
		    radius_meters = EXCLUDED.radius_meters,
		    updated_at = now()
		RETURNING latitude, longitude, radius_meters, updated_at
	`

	var saved site.Location
	err := q.QueryRow(ctx, query, loc.Latitude, loc.Longitude, loc.RadiusMeters).Scan(
		&saved.Latitude, &saved.Longitude, &saved.RadiusMeters, &saved.UpdatedAt,
	)
	if err != nil {
		return site.Location{}, fmt.Errorf("failed to save site location: %w", err)
	}

	return saved, nil
}
