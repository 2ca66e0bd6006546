package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/platform/logger"
	"github.com/phrazzld/swapi-gateway/internal/store"
)

// Session is the result of a successful sign-in.
type Session struct {
	Token     string
	Role      domain.Role
	ExpiresAt time.Time
}

// Service registers users and exchanges credentials for access tokens.
type Service struct {
	users     store.UserStore
	tokens    JWTService
	passwords PasswordHasher
	logger    *slog.Logger
}

// NewService creates an auth service.
func NewService(users store.UserStore, tokens JWTService, passwords PasswordHasher, logger *slog.Logger) (*Service, error) {
	if users == nil {
		return nil, fmt.Errorf("user store cannot be nil")
	}
	if tokens == nil {
		return nil, fmt.Errorf("jwt service cannot be nil")
	}
	if passwords == nil {
		return nil, fmt.Errorf("password hasher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger.With(slog.String("component", "auth_service")),
	}, nil
}

// SignUp registers a new user with the USER role.
// Domain validation errors are returned as-is; a taken username yields
// *UsernameTakenError.
func (s *Service) SignUp(ctx context.Context, username, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(username, password, domain.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	hashed, err := s.passwords.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, err
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, &UsernameTakenError{Username: user.Username}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user registered", "user_id", user.ID.String(), "role", string(user.Role))
	return user, nil
}

// SignIn verifies credentials and issues an access token.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) SignIn(ctx context.Context, username, password string) (*Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("sign-in for unknown user")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.passwords.Compare(user.HashedPassword, password); err != nil {
		log.Debug("sign-in with wrong password", "user_id", user.ID.String())
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &Session{Token: token, Role: user.Role, ExpiresAt: expiresAt}, nil
}
