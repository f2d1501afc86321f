package user

import "context"

type Repository interface {
	// GetByEmail returns the user, or nil when no user has that email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID returns the user or ErrUserNotFound.
	GetByID(ctx context.Context, id string) (User, error)
}
