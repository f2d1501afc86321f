package clock

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)
	if got := DateKey(ts); got != "2025-03-10" {
		t.Errorf("DateKey() = %q, want %q", got, "2025-03-10")
	}
}

func TestMonthRange(t *testing.T) {
	cases := []struct {
		month string
		from  string
		to    string
	}{
		{"2025-03", "2025-03-01", "2025-03-31"},
		{"2024-02", "2024-02-01", "2024-02-29"},
		{"2025-02", "2025-02-01", "2025-02-28"},
		{"2025-12", "2025-12-01", "2025-12-31"},
	}
	for _, c := range cases {
		from, to, err := MonthRange(c.month)
		if err != nil {
			t.Fatalf("MonthRange(%q) error: %v", c.month, err)
		}
		if from != c.from || to != c.to {
			t.Errorf("MonthRange(%q) = %q, %q, want %q, %q", c.month, from, to, c.from, c.to)
		}
	}
}

func TestMonthRange_Invalid(t *testing.T) {
	for _, month := range []string{"", "2025-13", "2025-03-10", "March"} {
		if _, _, err := MonthRange(month); err == nil {
			t.Errorf("MonthRange(%q) expected error", month)
		}
	}
}

func TestWorkSeconds(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	if got := WorkSeconds(in, in.Add(2*time.Hour+30*time.Minute)); got != 9000 {
		t.Errorf("WorkSeconds() = %d, want 9000", got)
	}

	// check-out before check-in clamps to zero
	if got := WorkSeconds(in, in.Add(-time.Hour)); got != 0 {
		t.Errorf("WorkSeconds() = %d, want 0", got)
	}

	// sub-second drift rounds to the nearest second
	if got := WorkSeconds(in, in.Add(time.Hour+400*time.Millisecond)); got != 3600 {
		t.Errorf("WorkSeconds() = %d, want 3600", got)
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(nil, time.UTC); got != "" {
		t.Errorf("FormatTime(nil) = %q, want empty", got)
	}

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatal(err)
	}
	ts := time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC)
	if got := FormatTime(&ts, jakarta); got != "09:00" {
		t.Errorf("FormatTime() = %q, want %q", got, "09:00")
	}
}

func TestNewSystemClock_InvalidTimezone(t *testing.T) {
	if _, err := NewSystemClock("Not/AZone"); err == nil {
		t.Error("NewSystemClock expected error for unknown timezone")
	}
}
