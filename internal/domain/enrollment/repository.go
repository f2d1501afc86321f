package enrollment

import "context"

// Repository reads enrolled face embeddings. Enrollment itself is handled
// by an external onboarding flow; the gate only needs the stored vector.
type Repository interface {
	// GetEmbedding returns the user's enrolled embedding, or nil when the
	// user has never enrolled.
	GetEmbedding(ctx context.Context, userID string) ([]float64, error)
}
