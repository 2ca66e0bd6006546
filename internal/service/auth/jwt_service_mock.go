package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/swapi-gateway/internal/domain"
)

// MockJWTService is a JWTService for tests. Function fields override the
// fixed defaults.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, user *domain.User) (string, time.Time, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*Claims, error)

	Token           string
	ExpiresAt       time.Time
	TokenError      error
	Claims          *Claims
	ValidationError error
}

// NewMockJWTService returns a mock whose tokens validate to a USER claim set.
func NewMockJWTService() *MockJWTService {
	now := time.Now()
	userID := uuid.New()
	return &MockJWTService{
		Token:     "mock-jwt-token",
		ExpiresAt: now.Add(time.Hour),
		Claims: &Claims{
			UserID:    userID,
			Role:      domain.RoleUser,
			TokenType: TokenTypeAccess,
			Subject:   userID.String(),
			IssuedAt:  now,
			ExpiresAt: now.Add(time.Hour),
			ID:        uuid.NewString(),
		},
	}
}

// GenerateToken implements JWTService.
func (m *MockJWTService) GenerateToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, user)
	}
	return m.Token, m.ExpiresAt, m.TokenError
}

// ValidateToken implements JWTService.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.ValidationError != nil {
		return nil, m.ValidationError
	}
	return m.Claims, nil
}
