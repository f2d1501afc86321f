package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/attendance-backend-go/internal/domain/attendance"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	doc_id, user_id, date, shift_id, shift_name,
	check_in_at, check_out_at, work_seconds, note,
	created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.DocID, &rec.UserID, &rec.Date, &rec.ShiftID, &rec.ShiftName,
		&rec.CheckInAt, &rec.CheckOutAt, &rec.WorkSeconds, &rec.Note,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// CreateIfAbsent implements attendance.Repository. The doc_id primary key
// plus ON CONFLICT DO NOTHING makes the double check-in guard atomic: of
// two racing inserts exactly one reports a created row.
func (a *attendanceRepository) CreateIfAbsent(ctx context.Context, rec attendance.Record) (bool, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		INSERT INTO attendances (
			doc_id, user_id, date, shift_id, shift_name,
			check_in_at, work_seconds, note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (doc_id) DO NOTHING
	`

	tag, err := q.Exec(ctx, query,
		rec.DocID,
		rec.UserID,
		rec.Date,
		rec.ShiftID,
		rec.ShiftName,
		rec.CheckInAt,
		rec.WorkSeconds,
		rec.Note,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create attendance: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetByDocID implements attendance.Repository.
func (a *attendanceRepository) GetByDocID(ctx context.Context, docID string) (*attendance.Record, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE doc_id = $1`

	rec, err := scanAttendance(q.QueryRow(ctx, query, docID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by doc id: %w", err)
	}

	return &rec, nil
}

// SetCheckOut implements attendance.Repository. The check_out_at IS NULL
// predicate makes the close conditional; a racing second check-out updates
// zero rows.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, docID string, at time.Time, workSeconds int) (bool, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out_at = $2, work_seconds = $3, updated_at = now()
		WHERE doc_id = $1
		  AND check_out_at IS NULL
	`

	tag, err := q.Exec(ctx, query, docID, at, workSeconds)
	if err != nil {
		return false, fmt.Errorf("failed to set check-out: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByUserRange implements attendance.Repository.
func (a *attendanceRepository) ListByUserRange(ctx context.Context, userID, from, to string) ([]attendance.Record, error) {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListRange implements attendance.Repository.
func (a *attendanceRepository) ListRange(ctx context.Context, from, to *string) ([]attendance.Record, error) {
	q := database.QuerierFrom(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if from != nil && *from != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *from)
		argIdx++
	}
	if to != nil && *to != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *to)
		argIdx++
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE ` + baseWhere + ` ORDER BY date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Update implements attendance.Repository. The key fields (doc_id, user_id,
// date) are never part of the SET list.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := database.QuerierFrom(ctx, a.db)

	query := `
		UPDATE attendances
		SET shift_id = $2, shift_name = $3, check_in_at = $4, check_out_at = $5,
		    work_seconds = $6, note = $7, updated_at = now()
		WHERE doc_id = $1
		RETURNING doc_id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.DocID,
		rec.ShiftID,
		rec.ShiftName,
		rec.CheckInAt,
		rec.CheckOutAt,
		rec.WorkSeconds,
		rec.Note,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}
