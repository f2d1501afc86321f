package gate

import (
	"context"
	"testing"

	"github.com/kerjahub/attendance-backend-go/internal/domain/attendance"
	"github.com/kerjahub/attendance-backend-go/internal/domain/gate"
	"github.com/kerjahub/attendance-backend-go/internal/domain/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnrollmentRepo struct {
	embeddings map[string][]float64
}

func (f *fakeEnrollmentRepo) GetEmbedding(_ context.Context, userID string) ([]float64, error) {
	return f.embeddings[userID], nil
}

type fakeSiteRepo struct {
	loc *site.Location
}

func (f *fakeSiteRepo) Get(_ context.Context) (*site.Location, error) { return f.loc, nil }
func (f *fakeSiteRepo) Save(_ context.Context, loc site.Location) (site.Location, error) {
	f.loc = &loc
	return loc, nil
}

// fakeAttendanceService records whether the state machine was reached.
type fakeAttendanceService struct {
	attendance.Service
	checkIns  int
	checkOuts int
}

func (f *fakeAttendanceService) CheckIn(_ context.Context, userID string) (attendance.CheckResult, error) {
	f.checkIns++
	return attendance.CheckResult{DocID: userID + "_2025-03-10"}, nil
}

func (f *fakeAttendanceService) CheckOut(_ context.Context, userID string) (attendance.CheckResult, error) {
	f.checkOuts++
	return attendance.CheckResult{DocID: userID + "_2025-03-10"}, nil
}

// Site located at the origin with a 100m radius. Enrolled embedding is a
// unit vector; distances from it are easy to reason about.
func newGateEnv() (*fakeEnrollmentRepo, *fakeSiteRepo, *fakeAttendanceService, gate.Service) {
	enrollments := &fakeEnrollmentRepo{embeddings: map[string][]float64{
		"u1": {1, 0, 0},
	}}
	sites := &fakeSiteRepo{loc: &site.Location{
		Latitude: 0, Longitude: 0, RadiusMeters: 100,
	}}
	attendanceSvc := &fakeAttendanceService{}
	svc := NewGateService(enrollments, sites, attendanceSvc, 0.6)
	return enrollments, sites, attendanceSvc, svc
}

func onSite() (lat, lon *float64) {
	zero := 0.0
	return &zero, &zero
}

func TestGateService_FaceCheckIn_Success(t *testing.T) {
	ctx := context.Background()
	_, _, attendanceSvc, svc := newGateEnv()
	lat, lon := onSite()

	result, err := svc.FaceCheckIn(ctx, "u1", gate.CheckRequest{
		Embedding: []float64{1, 0, 0},
		Latitude:  lat, Longitude: lon,
	})

	require.NoError(t, err)
	assert.Equal(t, "u1_2025-03-10", result.DocID)
	assert.Equal(t, 1, attendanceSvc.checkIns)
}

func TestGateService_MissingEmbedding(t *testing.T) {
	ctx := context.Background()
	_, _, attendanceSvc, svc := newGateEnv()
	lat, lon := onSite()

	_, err := svc.FaceCheckIn(ctx, "u1", gate.CheckRequest{Latitude: lat, Longitude: lon})

	assert.ErrorIs(t, err, gate.ErrMissingEmbedding)
	assert.Zero(t, attendanceSvc.checkIns)
}

func TestGateService_NotEnrolled(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newGateEnv()
	lat, lon := onSite()

	_, err := svc.FaceCheckIn(ctx, "u2", gate.CheckRequest{
		Embedding: []float64{1, 0, 0},
		Latitude:  lat, Longitude: lon,
	})

	assert.ErrorIs(t, err, gate.ErrNotEnrolled)
}

func TestGateService_FaceMismatch(t *testing.T) {
	ctx := context.Background()
	_, _, attendanceSvc, svc := newGateEnv()
	lat, lon := onSite()

	// Distance from (1,0,0) to (0,1,0) is sqrt(2), above the 0.6 threshold.
	_, err := svc.FaceCheckIn(ctx, "u1", gate.CheckRequest{
		Embedding: []float64{0, 1, 0},
		Latitude:  lat, Longitude: lon,
	})

	assert.ErrorIs(t, err, gate.ErrFaceMismatch)
	assert.Zero(t, attendanceSvc.checkIns)
}

func TestGateService_LengthMismatchIsFaceMismatch(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newGateEnv()
	lat, lon := onSite()

	_, err := svc.FaceCheckIn(ctx, "u1", gate.CheckRequest{
		Embedding: []float64{1, 0},
		Latitude:  lat, Longitude: lon,
	})

	assert.ErrorIs(t, err, gate.ErrFaceMismatch)
}

// A mismatched face with missing GPS must report the face failure. Identity
// is checked strictly before location.
func TestGateService_FaceCheckedBeforeLocation(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newGateEnv()

	_, err := svc.FaceCheckIn(ctx, "u1", gate.CheckRequest{
		Embedding: []float64{0, 1, 0},
	})

	assert.ErrorIs(t, err, gate.ErrFaceMismatch)
	assert.NotErrorIs(t, err, gate.ErrMissingGPS)
}

func TestGateService_MissingGPS(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := newGateEnv()
	lat := 0.0

	_, err := svc.FaceCheckIn(ctx, "u1", gate.CheckRequest{
		Embedding: []float64{1, 0, 0},
		Latitude:  &lat,
	})

	assert.ErrorIs(t, err, gate.ErrMissingGPS)
}

func TestGateService_SiteNotConfigured(t *testing.T) {
	ctx := context.Background()
	_, sites, _, svc := newGateEnv()
	sites.loc = nil
	lat, lon := onSite()

	_, err := svc.FaceCheckIn(ctx, "u1", gate.CheckRequest{
		Embedding: []float64{1, 0, 0},
		Latitude:  lat, Longitude: lon,
	})

	assert.ErrorIs(t, err, site.ErrSiteNotConfigured)
}

func TestGateService_InvalidSiteConfig(t *testing.T) {
	ctx := context.Background()
	_, sites, _, svc := newGateEnv()
	sites.loc.RadiusMeters = 0
	lat, lon := onSite()

	_, err := svc.FaceCheckIn(ctx, "u1", gate.CheckRequest{
		Embedding: []float64{1, 0, 0},
		Latitude:  lat, Longitude: lon,
	})

	assert.ErrorIs(t, err, site.ErrInvalidSiteConfig)
}

func TestGateService_OutOfRange(t *testing.T) {
	ctx := context.Background()
	_, _, attendanceSvc, svc := newGateEnv()
	// Roughly 111km north of the site.
	lat, lon := 1.0, 0.0

	_, err := svc.FaceCheckOut(ctx, "u1", gate.CheckRequest{
		Embedding: []float64{1, 0, 0},
		Latitude:  &lat, Longitude: &lon,
	})

	assert.ErrorIs(t, err, gate.ErrOutOfRange)
	assert.Contains(t, err.Error(), "allowed 100m")
	assert.Zero(t, attendanceSvc.checkOuts)
}

func TestGateService_ThresholdBoundary(t *testing.T) {
	ctx := context.Background()
	enrollments := &fakeEnrollmentRepo{embeddings: map[string][]float64{
		"u1": {0, 0},
	}}
	sites := &fakeSiteRepo{loc: &site.Location{RadiusMeters: 100}}
	svc := NewGateService(enrollments, sites, &fakeAttendanceService{}, 0.5)
	lat, lon := onSite()

	// Distance exactly at the threshold passes.
	_, err := svc.FaceCheckIn(ctx, "u1", gate.CheckRequest{
		Embedding: []float64{0.5, 0},
		Latitude:  lat, Longitude: lon,
	})
	assert.NoError(t, err)

	// Just above fails.
	_, err = svc.FaceCheckIn(ctx, "u1", gate.CheckRequest{
		Embedding: []float64{0.51, 0},
		Latitude:  lat, Longitude: lon,
	})
	assert.ErrorIs(t, err, gate.ErrFaceMismatch)
}

func TestGateService_ZeroThresholdFallsBackToDefault(t *testing.T) {
	svc := NewGateService(&fakeEnrollmentRepo{}, &fakeSiteRepo{}, &fakeAttendanceService{}, 0)

	impl, ok := svc.(*GateServiceImpl)
	require.True(t, ok)
	assert.Equal(t, gate.DefaultFaceThreshold, impl.threshold)
}
