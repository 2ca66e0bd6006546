package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/swapi-gateway/internal/domain"
)

// UserStore defines the interface for user account persistence.
type UserStore interface {
	// Create saves a new user. The user must already carry a HashedPassword.
	// Returns ErrUsernameExists if the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
