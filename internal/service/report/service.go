package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/kerjahub/attendance-backend-go/internal/domain/attendance"
	"github.com/kerjahub/attendance-backend-go/internal/domain/report"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/clock"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	records attendance.Repository
	clk     clock.Clock
}

func NewReportService(records attendance.Repository, clk clock.Clock) report.Service {
	return &ReportServiceImpl{records: records, clk: clk}
}

// MonthlyPDF implements report.Service.
func (s *ReportServiceImpl) MonthlyPDF(ctx context.Context, userID, month string) ([]byte, error) {
	from, to, err := clock.MonthRange(month)
	if err != nil {
		return nil, attendance.ErrMonthRequired
	}

	records, err := s.records.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Attendance Report %s", month))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("User: %s", userID))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	colWidths := []float64{30, 40, 25, 25, 25, 45}
	headers := []string{"Date", "Shift", "Check-in", "Check-out", "Minutes", "Note"}
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	totalMinutes := 0
	for _, rec := range records {
		shiftName := ""
		if rec.ShiftName != nil {
			shiftName = *rec.ShiftName
		}
		minutes := rec.WorkSeconds / 60
		totalMinutes += minutes

		cells := []string{
			rec.Date,
			shiftName,
			clock.FormatTime(rec.CheckInAt, s.clk.Location()),
			clock.FormatTime(rec.CheckOutAt, s.clk.Location()),
			fmt.Sprintf("%d", minutes),
			rec.Note,
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 8, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Days recorded: %d, total minutes: %d", len(records), totalMinutes))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportXLSX implements report.Service.
func (s *ReportServiceImpl) ExportXLSX(ctx context.Context, from, to *string) ([]byte, error) {
	filter := attendance.ListFilter{From: from, To: to}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.records.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Doc ID", "User ID", "Date", "Shift", "Check-in", "Check-out", "Work Minutes", "Note"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	for row, rec := range records {
		shiftName := ""
		if rec.ShiftName != nil {
			shiftName = *rec.ShiftName
		}
		values := []interface{}{
			rec.DocID,
			rec.UserID,
			rec.Date,
			shiftName,
			clock.FormatTime(rec.CheckInAt, s.clk.Location()),
			clock.FormatTime(rec.CheckOutAt, s.clk.Location()),
			rec.WorkSeconds / 60,
			rec.Note,
		}
		for col, v := range values {
			cell := fmt.Sprintf("%c%d", 'A'+col, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
