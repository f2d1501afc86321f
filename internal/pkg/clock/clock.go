package clock

import "time"

const (
	// DateLayout is the canonical date key format used across all stores.
	DateLayout = "2006-01-02"
	// MonthLayout is the calendar request format.
	MonthLayout = "2006-01"
	// TimeLayout is the display format for check-in/check-out times.
	TimeLayout = "15:04"
)

// Clock supplies the current time in the company's reference timezone.
// Services take a Clock instead of calling time.Now so date-key and
// work-duration logic stays deterministic under test.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a Clock pinned to the given IANA timezone.
func NewSystemClock(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &systemClock{loc: loc}, nil
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *systemClock) Location() *time.Location {
	return c.loc
}

// DateKey formats t as a "YYYY-MM-DD" date key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthRange returns the inclusive first and last date keys of a
// "YYYY-MM" month.
func MonthRange(month string) (from, to string, err error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return "", "", err
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout), nil
}

// WorkSeconds returns the whole-second duration between check-in and
// check-out, never negative.
func WorkSeconds(checkIn, checkOut time.Time) int {
	secs := int(checkOut.Sub(checkIn).Round(time.Second).Seconds())
	if secs < 0 {
		return 0
	}
	return secs
}

// FormatTime renders t in the reference timezone as "HH:MM", or "" for nil.
func FormatTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format(TimeLayout)
}
