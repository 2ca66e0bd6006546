package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/swapi-gateway/internal/domain"
)

// TokenTypeAccess is the only token type issued by the gateway.
const TokenTypeAccess = "access"

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for user and returns it
	// with its expiry time.
	GenerateToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateToken validates an access token and extracts its claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid, ErrWrongTokenType or
	// ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of an access token.
type Claims struct {
	UserID    uuid.UUID   `json:"uid,omitempty"`
	Role      domain.Role `json:"role,omitempty"`
	TokenType string      `json:"type,omitempty"`

	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
