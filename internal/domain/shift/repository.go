package shift

import "context"

// Repository is the read-only shift assignment lookup.
type Repository interface {
	// GetByUserAndDate returns the user's assignment for the date key, or
	// nil when none is scheduled.
	GetByUserAndDate(ctx context.Context, userID, date string) (*Assignment, error)

	// ListByUserRange returns assignments with date in [from, to],
	// ascending by date.
	ListByUserRange(ctx context.Context, userID, from, to string) ([]Assignment, error)
}
