package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/attendance-backend-go/internal/domain/shift"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{db: db}
}

// GetByUserAndDate implements shift.Repository.
func (s *shiftRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*shift.Assignment, error) {
	q := database.QuerierFrom(ctx, s.db)

	query := `
		SELECT user_id, date, shift_id, shift_name
		FROM user_shifts
		WHERE user_id = $1 AND date = $2
	`

	var asg shift.Assignment
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&asg.UserID, &asg.Date, &asg.ShiftID, &asg.ShiftName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return &asg, nil
}

// ListByUserRange implements shift.Repository.
func (s *shiftRepository) ListByUserRange(ctx context.Context, userID, from, to string) ([]shift.Assignment, error) {
	q := database.QuerierFrom(ctx, s.db)

	query := `
		SELECT user_id, date, shift_id, shift_name
		FROM user_shifts
		WHERE user_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		var asg shift.Assignment
		if err := rows.Scan(&asg.UserID, &asg.Date, &asg.ShiftID, &asg.ShiftName); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, asg)
	}

	return assignments, rows.Err()
}
