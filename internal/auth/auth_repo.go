package auth

import (
	"context"

	"go-storefront/internal/storeapi"
)

//go:generate mockgen -source=auth_repo.go -destination=../mock/auth/auth_repo_mock.go -package=mock
type Repository interface {
	Register(ctx context.Context, req storeapi.RegisterRequest) (*storeapi.AuthResult, error)
}

// Resetter drops whatever a package mirrors for a session.
type Resetter interface {
	Reset(sessionID string)
}
