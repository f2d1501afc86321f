package attendance

import (
	"context"
)

// Service defines the attendance state machine and its read models.
// Domain rule violations come back as the sentinel errors in errors.go;
// only infrastructure faults are wrapped and escape as unexpected errors.
type Service interface {
	// CheckIn creates today's record for the user. Requires a shift
	// assignment for today; fails when a record already exists.
	CheckIn(ctx context.Context, userID string) (CheckResult, error)

	// CheckOut closes today's record and computes the work duration.
	CheckOut(ctx context.Context, userID string) (CheckResult, error)

	// GetHistory returns the user's records from the last two months,
	// ascending by date.
	GetHistory(ctx context.Context, userID string) ([]HistoryEntry, error)

	// GetSummary counts worked vs scheduled-but-absent days for the
	// current calendar month.
	GetSummary(ctx context.Context, userID string) (Summary, error)

	// GetCalendar merges shifts, attendance, pending requests and approved
	// leave into a per-day status view for a "YYYY-MM" month.
	GetCalendar(ctx context.Context, userID, month string) (map[string]CalendarDay, error)

	// ListAttendance returns records for the optional date range (admin).
	ListAttendance(ctx context.Context, filter ListFilter) ([]RecordResponse, error)

	// GetAttendance returns a record by doc id, or nil when absent (admin).
	GetAttendance(ctx context.Context, docID string) (*RecordResponse, error)

	// UpdateAttendance merges fields into an existing record (admin).
	UpdateAttendance(ctx context.Context, docID string, req UpdateRecordRequest) (RecordResponse, error)
}
