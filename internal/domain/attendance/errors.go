package attendance

import "errors"

// Attendance domain errors
var (
	// State machine violations
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrNoShiftAssigned   = errors.New("no shift assigned for today")

	// Request shape / lookup failures
	ErrMonthRequired  = errors.New("month is required (format YYYY-MM)")
	ErrRecordNotFound = errors.New("attendance record not found")
)
