package request

// Status of a leave or edit request. The core only reads these to color
// calendar days; the request workflows themselves live elsewhere.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest is the minimal view of a leave the calendar needs.
type LeaveRequest struct {
	UserID string
	Date   string // "YYYY-MM-DD"
	Status Status
}

// EditRequest is the minimal view of an attendance-edit request.
type EditRequest struct {
	UserID string
	Date   string
	Status Status
}
