package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/kerjahub/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time           { return c.now }
func (c *fixedClock) Location() *time.Location { return c.now.Location() }

type fakeRecordRepo struct {
	records []attendance.Record
}

func (f *fakeRecordRepo) CreateIfAbsent(context.Context, attendance.Record) (bool, error) {
	return false, nil
}

func (f *fakeRecordRepo) GetByDocID(context.Context, string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordRepo) SetCheckOut(context.Context, string, time.Time, int) (bool, error) {
	return false, nil
}

func (f *fakeRecordRepo) ListByUserRange(_ context.Context, userID, from, to string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Date >= from && rec.Date <= to {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListRange(_ context.Context, from, to *string) ([]attendance.Record, error) {
	return f.records, nil
}

func (f *fakeRecordRepo) Update(context.Context, attendance.Record) error { return nil }

func newReportTestService() (*fakeRecordRepo, *ReportServiceImpl) {
	in := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)
	shiftName := "Morning"

	repo := &fakeRecordRepo{records: []attendance.Record{
		{
			DocID: "u1_2025-03-03", UserID: "u1", Date: "2025-03-03",
			ShiftName: &shiftName, CheckInAt: &in, CheckOutAt: &out,
			WorkSeconds: 32400, Note: "on time",
		},
		{
			DocID: "u1_2025-03-04", UserID: "u1", Date: "2025-03-04",
			ShiftName: &shiftName, CheckInAt: &in,
		},
	}}
	clk := &fixedClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	return repo, NewReportService(repo, clk).(*ReportServiceImpl)
}

func TestReportService_MonthlyPDF(t *testing.T) {
	ctx := context.Background()
	_, svc := newReportTestService()

	pdfBytes, err := svc.MonthlyPDF(ctx, "u1", "2025-03")

	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestReportService_MonthlyPDF_BadMonth(t *testing.T) {
	ctx := context.Background()
	_, svc := newReportTestService()

	_, err := svc.MonthlyPDF(ctx, "u1", "March")

	assert.ErrorIs(t, err, attendance.ErrMonthRequired)
}

func TestReportService_ExportXLSX(t *testing.T) {
	ctx := context.Background()
	_, svc := newReportTestService()

	xlsxBytes, err := svc.ExportXLSX(ctx, nil, nil)

	require.NoError(t, err)
	require.NotEmpty(t, xlsxBytes)

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Attendance", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Doc ID", header)

	docID, err := f.GetCellValue("Attendance", "A2")
	require.NoError(t, err)
	assert.Equal(t, "u1_2025-03-03", docID)

	minutes, err := f.GetCellValue("Attendance", "G2")
	require.NoError(t, err)
	assert.Equal(t, "540", minutes)
}

func TestReportService_ExportXLSX_InvalidRange(t *testing.T) {
	ctx := context.Background()
	_, svc := newReportTestService()
	bad := "3/10/2025"

	_, err := svc.ExportXLSX(ctx, &bad, nil)

	assert.Error(t, err)
}
