package attendance

import (
	"time"
)

// Record is one attendance document per (user, calendar date), identified
// by the composite DocID "userID_date". It is created by check-in, mutated
// once by check-out and afterwards only by admin override.
type Record struct {
	DocID       string
	UserID      string
	Date        string // "YYYY-MM-DD" in the reference timezone
	ShiftID     *string
	ShiftName   *string
	CheckInAt   *time.Time
	CheckOutAt  *time.Time
	WorkSeconds int
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DocID builds the composite key for a user and date key.
func DocID(userID, date string) string {
	return userID + "_" + date
}
