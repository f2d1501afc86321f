package shift

// Assignment maps a user and date to a scheduled shift. Assignments are
// owned by the scheduling subsystem; this core only reads them.
type Assignment struct {
	UserID    string
	Date      string // "YYYY-MM-DD"
	ShiftID   string
	ShiftName string
}
