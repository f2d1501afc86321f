package site

import "context"

// Repository stores the singleton site location.
type Repository interface {
	// Get returns the configured location, or nil when the admin has not
	// set one yet.
	Get(ctx context.Context) (*Location, error)

	// Save upserts the singleton.
	Save(ctx context.Context, loc Location) (Location, error)
}
