package auth

import "context"

type Service interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair and
	// revokes the old one.
	Refresh(ctx context.Context, req RefreshRequest) (LoginResponse, error)
}
