package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kerjahub/attendance-backend-go/internal/domain/attendance"
	"github.com/kerjahub/attendance-backend-go/internal/domain/request"
	"github.com/kerjahub/attendance-backend-go/internal/domain/shift"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/clock"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	records  attendance.Repository
	shifts   shift.Repository
	leaves   request.LeaveRepository
	requests request.EditRequestRepository
	clk      clock.Clock
}

func NewAttendanceService(
	records attendance.Repository,
	shifts shift.Repository,
	leaves request.LeaveRepository,
	requests request.EditRequestRepository,
	clk clock.Clock,
) attendance.Service {
	return &AttendanceServiceImpl{
		records:  records,
		shifts:   shifts,
		leaves:   leaves,
		requests: requests,
		clk:      clk,
	}
}

// timePtrToString safely converts a *time.Time to a display string.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format("2006-01-02 15:04:05")
	return &formatted
}

// CheckIn implements attendance.Service.
//
// The double check-in guard is the store's conditional create, not a
// read-then-write: two concurrent check-ins for the same key race on the
// insert and exactly one wins.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string) (attendance.CheckResult, error) {
	now := s.clk.Now()
	date := clock.DateKey(now)

	assignment, err := s.shifts.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return attendance.CheckResult{}, fmt.Errorf("failed to look up shift assignment: %w", err)
	}
	if assignment == nil {
		return attendance.CheckResult{}, attendance.ErrNoShiftAssigned
	}

	rec := attendance.Record{
		DocID:     attendance.DocID(userID, date),
		UserID:    userID,
		Date:      date,
		ShiftID:   &assignment.ShiftID,
		ShiftName: &assignment.ShiftName,
		CheckInAt: &now,
	}

	created, err := s.records.CreateIfAbsent(ctx, rec)
	if err != nil {
		return attendance.CheckResult{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	if !created {
		return attendance.CheckResult{}, attendance.ErrAlreadyCheckedIn
	}

	return attendance.CheckResult{
		DocID:     rec.DocID,
		Date:      rec.Date,
		ShiftName: rec.ShiftName,
		CheckInAt: timePtrToString(rec.CheckInAt, s.clk.Location()),
	}, nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string) (attendance.CheckResult, error) {
	now := s.clk.Now()
	docID := attendance.DocID(userID, clock.DateKey(now))

	rec, err := s.records.GetByDocID(ctx, docID)
	if err != nil {
		return attendance.CheckResult{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec == nil || rec.CheckInAt == nil {
		return attendance.CheckResult{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOutAt != nil {
		return attendance.CheckResult{}, attendance.ErrAlreadyCheckedOut
	}

	workSeconds := clock.WorkSeconds(*rec.CheckInAt, now)

	updated, err := s.records.SetCheckOut(ctx, docID, now, workSeconds)
	if err != nil {
		return attendance.CheckResult{}, fmt.Errorf("failed to close attendance record: %w", err)
	}
	if !updated {
		// A concurrent check-out won the conditional update.
		return attendance.CheckResult{}, attendance.ErrAlreadyCheckedOut
	}

	return attendance.CheckResult{
		DocID:       docID,
		Date:        rec.Date,
		ShiftName:   rec.ShiftName,
		CheckInAt:   timePtrToString(rec.CheckInAt, s.clk.Location()),
		CheckOutAt:  timePtrToString(&now, s.clk.Location()),
		WorkSeconds: workSeconds,
	}, nil
}

// GetHistory implements attendance.Service.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, userID string) ([]attendance.HistoryEntry, error) {
	now := s.clk.Now()
	from := clock.DateKey(now.AddDate(0, -2, 0))
	to := clock.DateKey(now)

	records, err := s.records.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	entries := make([]attendance.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, attendance.HistoryEntry{
			Date:        rec.Date,
			CheckIn:     clock.FormatTime(rec.CheckInAt, s.clk.Location()),
			CheckOut:    clock.FormatTime(rec.CheckOutAt, s.clk.Location()),
			WorkMinutes: rec.WorkSeconds / 60,
			Note:        rec.Note,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	return entries, nil
}

// GetSummary implements attendance.Service.
func (s *AttendanceServiceImpl) GetSummary(ctx context.Context, userID string) (attendance.Summary, error) {
	now := s.clk.Now()
	from, to, err := clock.MonthRange(now.Format(clock.MonthLayout))
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to resolve current month: %w", err)
	}

	assignments, err := s.shifts.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	records, err := s.records.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	shiftDays := make(map[string]bool, len(assignments))
	for _, assignment := range assignments {
		shiftDays[assignment.Date] = true
	}

	worked := make(map[string]bool)
	for _, rec := range records {
		if shiftDays[rec.Date] {
			worked[rec.Date] = true
		}
	}

	return attendance.Summary{
		DaysWorked: len(worked),
		DaysOff:    len(shiftDays) - len(worked),
	}, nil
}

// GetCalendar implements attendance.Service.
//
// This is the full four-source merge: shift assignments set the day
// universe, then attendance, pending edit requests and approved leave
// resolve the status by priority. Dates without a shift are never emitted.
func (s *AttendanceServiceImpl) GetCalendar(ctx context.Context, userID, month string) (map[string]attendance.CalendarDay, error) {
	if validator.IsEmpty(month) {
		return nil, attendance.ErrMonthRequired
	}
	from, to, err := clock.MonthRange(month)
	if err != nil {
		return nil, attendance.ErrMonthRequired
	}

	assignments, err := s.shifts.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	records, err := s.records.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	pendingDates, err := s.requests.PendingDates(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	leaveDates, err := s.leaves.ApprovedDates(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	recordByDate := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		recordByDate[rec.Date] = rec
	}
	pending := make(map[string]bool, len(pendingDates))
	for _, d := range pendingDates {
		pending[d] = true
	}
	onLeave := make(map[string]bool, len(leaveDates))
	for _, d := range leaveDates {
		onLeave[d] = true
	}

	calendar := make(map[string]attendance.CalendarDay, len(assignments))
	for _, assignment := range assignments {
		day := attendance.CalendarDay{
			Date:     assignment.Date,
			HasShift: true,
			Shift:    assignment.ShiftName,
		}

		rec, hasRecord := recordByDate[assignment.Date]
		switch {
		case hasRecord && rec.CheckInAt != nil && rec.CheckOutAt != nil:
			day.Status = attendance.StatusCheckedFull
			day.Icon = attendance.IconCheckedFull
			checkIn := clock.FormatTime(rec.CheckInAt, s.clk.Location())
			checkOut := clock.FormatTime(rec.CheckOutAt, s.clk.Location())
			day.CheckIn = &checkIn
			day.CheckOut = &checkOut
		case hasRecord && rec.CheckInAt != nil:
			day.Status = attendance.StatusCheckedIncomplete
			day.Icon = attendance.IconCheckedIncomplete
			checkIn := clock.FormatTime(rec.CheckInAt, s.clk.Location())
			day.CheckIn = &checkIn
		case pending[assignment.Date]:
			day.Status = attendance.StatusPendingRequest
			day.Icon = attendance.IconPendingRequest
		case onLeave[assignment.Date]:
			day.Status = attendance.StatusLeaveApproved
			day.Icon = attendance.IconLeaveApproved
		default:
			day.Status = attendance.StatusAbsent
			day.Icon = attendance.IconAbsent
		}

		calendar[assignment.Date] = day
	}

	return calendar, nil
}

// ListAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.records.ListRange(ctx, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.mapRecordToResponse(rec))
	}

	return responses, nil
}

// GetAttendance implements attendance.Service. A missing record returns
// nil, not an error; absence is a normal answer for admins.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, docID string) (*attendance.RecordResponse, error) {
	rec, err := s.records.GetByDocID(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec == nil {
		return nil, nil
	}

	resp := s.mapRecordToResponse(*rec)
	return &resp, nil
}

// UpdateAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, docID string, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	rec, err := s.records.GetByDocID(ctx, docID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}

	if req.ShiftID != nil {
		rec.ShiftID = req.ShiftID
	}
	if req.ShiftName != nil {
		rec.ShiftName = req.ShiftName
	}
	if req.CheckInAt != nil {
		rec.CheckInAt = req.CheckInAt
	}
	if req.CheckOutAt != nil {
		rec.CheckOutAt = req.CheckOutAt
	}
	if req.Note != nil {
		rec.Note = *req.Note
	}

	if req.WorkSeconds != nil {
		rec.WorkSeconds = *req.WorkSeconds
	} else if rec.CheckInAt != nil && rec.CheckOutAt != nil {
		// Keep the duration invariant when the admin moved the timestamps
		// without supplying an explicit override.
		rec.WorkSeconds = clock.WorkSeconds(*rec.CheckInAt, *rec.CheckOutAt)
	}

	rec.UpdatedAt = s.clk.Now()

	if err := s.records.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := s.records.GetByDocID(ctx, docID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get updated attendance record: %w", err)
	}
	if updated == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}

	return s.mapRecordToResponse(*updated), nil
}

func (s *AttendanceServiceImpl) mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		DocID:       rec.DocID,
		UserID:      rec.UserID,
		Date:        rec.Date,
		ShiftID:     rec.ShiftID,
		ShiftName:   rec.ShiftName,
		CheckInAt:   timePtrToString(rec.CheckInAt, s.clk.Location()),
		CheckOutAt:  timePtrToString(rec.CheckOutAt, s.clk.Location()),
		WorkSeconds: rec.WorkSeconds,
		Note:        rec.Note,
		CreatedAt:   rec.CreatedAt.In(s.clk.Location()).Format("2006-01-02 15:04:05"),
		UpdatedAt:   rec.UpdatedAt.In(s.clk.Location()).Format("2006-01-02 15:04:05"),
	}
}
