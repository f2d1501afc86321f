package attendance

import (
	"time"

	"github.com/kerjahub/attendance-backend-go/internal/pkg/validator"
)

// Calendar day statuses, in priority order (first match wins).
const (
	StatusCheckedFull       = "checked-full"
	StatusCheckedIncomplete = "checked-incomplete"
	StatusPendingRequest    = "pending-request"
	StatusLeaveApproved     = "leave-approved"
	StatusAbsent            = "absent"
)

const (
	IconCheckedFull       = "✓"
	IconCheckedIncomplete = "•"
	IconPendingRequest    = "!"
	IconLeaveApproved     = "P"
	IconAbsent            = "X"
)

// CheckResult is returned by both check-in and check-out.
type CheckResult struct {
	DocID       string  `json:"doc_id"`
	Date        string  `json:"date"`
	ShiftName   *string `json:"shift_name,omitempty"`
	CheckInAt   *string `json:"check_in_at,omitempty"`
	CheckOutAt  *string `json:"check_out_at,omitempty"`
	WorkSeconds int     `json:"work_seconds"`
}

// HistoryEntry is one row of the two-month attendance history.
type HistoryEntry struct {
	Date        string `json:"date"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	WorkMinutes int    `json:"work_minutes"`
	Note        string `json:"note,omitempty"`
}

// Summary counts worked vs scheduled-but-absent days for the current month.
type Summary struct {
	DaysWorked int `json:"days_worked"`
	DaysOff    int `json:"days_off"`
}

// CalendarDay is the derived per-date reconciliation of shift, attendance,
// request and leave facts. It is recomputed on every request.
type CalendarDay struct {
	Date     string  `json:"date"`
	HasShift bool    `json:"has_shift"`
	Shift    string  `json:"shift"`
	Status   string  `json:"status"`
	Icon     string  `json:"icon"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}

// RecordResponse is the admin-facing view of a stored record.
type RecordResponse struct {
	DocID       string  `json:"doc_id"`
	UserID      string  `json:"user_id"`
	Date        string  `json:"date"`
	ShiftID     *string `json:"shift_id,omitempty"`
	ShiftName   *string `json:"shift_name,omitempty"`
	CheckInAt   *string `json:"check_in_at,omitempty"`
	CheckOutAt  *string `json:"check_out_at,omitempty"`
	WorkSeconds int     `json:"work_seconds"`
	Note        string  `json:"note,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ListFilter is the optional inclusive date range for admin listing.
type ListFilter struct {
	From *string `json:"from,omitempty"` // YYYY-MM-DD
	To   *string `json:"to,omitempty"`   // YYYY-MM-DD
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != nil && *f.From != "" {
		if _, ok := validator.IsValidDate(*f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a YYYY-MM-DD date",
			})
		}
	}
	if f.To != nil && *f.To != "" {
		if _, ok := validator.IsValidDate(*f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest merges admin-supplied fields into an existing record.
// Key fields (doc id, user id, date) are never touched. The admin is
// trusted; no field-level validation beyond timestamp parsing happens here.
type UpdateRecordRequest struct {
	ShiftID     *string    `json:"shift_id,omitempty"`
	ShiftName   *string    `json:"shift_name,omitempty"`
	CheckInAt   *time.Time `json:"check_in_at,omitempty"`
	CheckOutAt  *time.Time `json:"check_out_at,omitempty"`
	WorkSeconds *int       `json:"work_seconds,omitempty"`
	Note        *string    `json:"note,omitempty"`
}
