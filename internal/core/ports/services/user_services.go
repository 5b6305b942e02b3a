package services

import (
	"context"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// UserSvcFacade defines the interface for user management and authentication.
type UserSvcFacade interface {
	// CreateUser registers a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a specific user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// AuthenticateUser verifies the username/password pair and returns the
	// matching user. ErrValidation is returned on a bad pair without
	// revealing which part failed.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}
