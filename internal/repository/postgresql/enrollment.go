package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/attendance-backend-go/internal/domain/enrollment"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/database"
)

type enrollmentRepository struct {
	db *database.DB
}

func NewEnrollmentRepository(db *database.DB) enrollment.Repository {
	return &enrollmentRepository{db: db}
}

// GetEmbedding implements enrollment.Repository.
func (e *enrollmentRepository) GetEmbedding(ctx context.Context, userID string) ([]float64, error) {
	q := database.QuerierFrom(ctx, e.db)

	query := `SELECT embedding FROM face_enrollments WHERE user_id = $1`

	var embedding []float64
	err := q.QueryRow(ctx, query, userID).Scan(&embedding)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get face embedding: %w", err)
	}

	return embedding, nil
}
