package postgresql

import (
	"context"
	"fmt"

	"github.com/kerjahub/attendance-backend-go/internal/domain/request"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) request.LeaveRepository {
	return &leaveRepository{db: db}
}

// ApprovedDates implements request.LeaveRepository.
func (l *leaveRepository) ApprovedDates(ctx context.Context, userID, from, to string) ([]string, error) {
	return queryRequestDates(ctx, l.db, "leaves", request.StatusApproved, userID, from, to)
}

type editRequestRepository struct {
	db *database.DB
}

func NewEditRequestRepository(db *database.DB) request.EditRequestRepository {
	return &editRequestRepository{db: db}
}

// PendingDates implements request.EditRequestRepository.
func (e *editRequestRepository) PendingDates(ctx context.Context, userID, from, to string) ([]string, error) {
	return queryRequestDates(ctx, e.db, "edit_requests", request.StatusPending, userID, from, to)
}

func queryRequestDates(ctx context.Context, db *database.DB, table string, status request.Status, userID, from, to string) ([]string, error) {
	q := database.QuerierFrom(ctx, db)

	query := fmt.Sprintf(`
		SELECT DISTINCT date
		FROM %s
		WHERE user_id = $1
		  AND status = $2
		  AND date >= $3
		  AND date <= $4
		ORDER BY date ASC
	`, table)

	rows, err := q.Query(ctx, query, userID, string(status), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s dates: %w", table, err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan %s date: %w", table, err)
		}
		dates = append(dates, date)
	}

	return dates, rows.Err()
}
