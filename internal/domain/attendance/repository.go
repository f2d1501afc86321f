package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. The store keys
// records by DocID; every method is safe for concurrent use per key.
type Repository interface {
	// CreateIfAbsent inserts the record and reports whether it was created.
	// A false return means a record already exists for the key. This is the
	// atomic guard against double check-in; callers must not pre-check.
	CreateIfAbsent(ctx context.Context, rec Record) (bool, error)

	// GetByDocID returns the record, or nil when none exists.
	GetByDocID(ctx context.Context, docID string) (*Record, error)

	// SetCheckOut closes the record. It only applies when check_out_at is
	// still unset and reports whether a row was updated, so a lost race
	// surfaces as false rather than a silent overwrite.
	SetCheckOut(ctx context.Context, docID string, at time.Time, workSeconds int) (bool, error)

	// ListByUserRange returns the user's records with date in [from, to],
	// ascending by date.
	ListByUserRange(ctx context.Context, userID, from, to string) ([]Record, error)

	// ListRange returns all records, optionally bounded by an inclusive
	// date range, ascending by date.
	ListRange(ctx context.Context, from, to *string) ([]Record, error)

	// Update overwrites the record's mutable fields and bumps updated_at.
	// Returns ErrRecordNotFound when the key does not exist.
	Update(ctx context.Context, rec Record) error
}
