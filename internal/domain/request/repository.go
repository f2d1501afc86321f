package request

import "context"

// LeaveRepository reads approved leave dates for the calendar merge.
type LeaveRepository interface {
	// ApprovedDates returns the distinct date keys in [from, to] on which
	// the user has an approved leave.
	ApprovedDates(ctx context.Context, userID, from, to string) ([]string, error)
}

// EditRequestRepository reads pending edit-request dates for the calendar.
type EditRequestRepository interface {
	// PendingDates returns the distinct date keys in [from, to] on which
	// the user has a pending edit request.
	PendingDates(ctx context.Context, userID, from, to string) ([]string, error)
}
