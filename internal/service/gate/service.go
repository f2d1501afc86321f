package gate

import (
	"context"
	"fmt"

	"github.com/kerjahub/attendance-backend-go/internal/domain/attendance"
	"github.com/kerjahub/attendance-backend-go/internal/domain/enrollment"
	"github.com/kerjahub/attendance-backend-go/internal/domain/gate"
	"github.com/kerjahub/attendance-backend-go/internal/domain/site"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/face"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/geo"
)

type GateServiceImpl struct {
	enrollments enrollment.Repository
	sites       site.Repository
	attendance  attendance.Service
	threshold   float64
}

// NewGateService builds the face/GPS gate. threshold is the maximum
// embedding distance accepted as a match; values <= 0 fall back to
// gate.DefaultFaceThreshold.
func NewGateService(
	enrollments enrollment.Repository,
	sites site.Repository,
	attendanceService attendance.Service,
	threshold float64,
) gate.Service {
	if threshold <= 0 {
		threshold = gate.DefaultFaceThreshold
	}
	return &GateServiceImpl{
		enrollments: enrollments,
		sites:       sites,
		attendance:  attendanceService,
		threshold:   threshold,
	}
}

// FaceCheckIn implements gate.Service.
func (g *GateServiceImpl) FaceCheckIn(ctx context.Context, userID string, req gate.CheckRequest) (attendance.CheckResult, error) {
	if err := g.verify(ctx, userID, req); err != nil {
		return attendance.CheckResult{}, err
	}
	return g.attendance.CheckIn(ctx, userID)
}

// FaceCheckOut implements gate.Service.
func (g *GateServiceImpl) FaceCheckOut(ctx context.Context, userID string, req gate.CheckRequest) (attendance.CheckResult, error) {
	if err := g.verify(ctx, userID, req); err != nil {
		return attendance.CheckResult{}, err
	}
	return g.attendance.CheckOut(ctx, userID)
}

// verify runs the six gate checks in order. Identity comes strictly before
// location: a caller who fails the face check learns nothing about the
// geofence, and a caller with a bad location never touches attendance state.
func (g *GateServiceImpl) verify(ctx context.Context, userID string, req gate.CheckRequest) error {
	// 1. embedding presence
	if len(req.Embedding) == 0 {
		return gate.ErrMissingEmbedding
	}

	// 2. enrollment
	enrolled, err := g.enrollments.GetEmbedding(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load enrolled embedding: %w", err)
	}
	if len(enrolled) == 0 {
		return gate.ErrNotEnrolled
	}

	// 3. face distance
	if face.Distance(req.Embedding, enrolled) > g.threshold {
		return gate.ErrFaceMismatch
	}

	// 4. gps presence
	if req.Latitude == nil || req.Longitude == nil {
		return gate.ErrMissingGPS
	}

	// 5. site configuration
	loc, err := g.sites.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load site location: %w", err)
	}
	if loc == nil {
		return site.ErrSiteNotConfigured
	}
	if loc.RadiusMeters <= 0 || !geo.ValidCoordinate(loc.Latitude, loc.Longitude) {
		return site.ErrInvalidSiteConfig
	}

	// 6. geofence
	distance := geo.HaversineDistance(*req.Latitude, *req.Longitude, loc.Latitude, loc.Longitude)
	if distance > loc.RadiusMeters {
		return fmt.Errorf("%w: %.0fm from site, allowed %.0fm", gate.ErrOutOfRange, distance, loc.RadiusMeters)
	}

	return nil
}
