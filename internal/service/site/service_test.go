package site

import (
	"context"
	"testing"

	"github.com/kerjahub/attendance-backend-go/internal/domain/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSiteRepo struct {
	loc *site.Location
}

func (f *fakeSiteRepo) Get(context.Context) (*site.Location, error) { return f.loc, nil }
func (f *fakeSiteRepo) Save(_ context.Context, loc site.Location) (site.Location, error) {
	f.loc = &loc
	return loc, nil
}

func TestSiteService_Get_Unconfigured(t *testing.T) {
	svc := NewSiteService(&fakeSiteRepo{})

	loc, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestSiteService_UpdateThenGet(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSiteRepo{}
	svc := NewSiteService(repo)

	updated, err := svc.Update(ctx, site.UpdateLocationRequest{
		Latitude: -6.2, Longitude: 106.8, RadiusMeters: 150,
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.RadiusMeters)

	loc, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, -6.2, loc.Latitude)
	assert.Equal(t, 106.8, loc.Longitude)
}

func TestSiteService_Update_Invalid(t *testing.T) {
	svc := NewSiteService(&fakeSiteRepo{})

	_, err := svc.Update(context.Background(), site.UpdateLocationRequest{
		Latitude: 91, Longitude: 0, RadiusMeters: 100,
	})
	assert.Error(t, err)

	_, err = svc.Update(context.Background(), site.UpdateLocationRequest{
		Latitude: 0, Longitude: 0, RadiusMeters: 0,
	})
	assert.Error(t, err)
}
