package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-03-10", "2024-02-29", "2025-12-31"}
	invalid := []string{"2025-3-10", "10-03-2025", "2025-02-30", "2025-13-01", "", "yesterday"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2025-03", "2024-12"}
	invalid := []string{"2025-3", "2025-13", "2025-03-10", "", "March 2025"}
	for _, month := range valid {
		if _, ok := IsValidMonth(month); !ok {
			t.Errorf("IsValidMonth(%q) = false, want true", month)
		}
	}
	for _, month := range invalid {
		if _, ok := IsValidMonth(month); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", month)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "from", Message: "from must be a YYYY-MM-DD date"},
		{Field: "to", Message: "to must be a YYYY-MM-DD date"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["from"] != "from must be a YYYY-MM-DD date" {
		t.Errorf("ToMap()[from] = %q", m["from"])
	}
}
