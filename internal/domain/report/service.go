package report

import "context"

// Service renders attendance data for download. Layout is deliberately
// plain; the data itself comes from the attendance store.
type Service interface {
	// MonthlyPDF renders one user's attendance for a "YYYY-MM" month.
	MonthlyPDF(ctx context.Context, userID, month string) ([]byte, error)

	// ExportXLSX renders all records in the optional date range as a
	// spreadsheet.
	ExportXLSX(ctx context.Context, from, to *string) ([]byte, error)
}
