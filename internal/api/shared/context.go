package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/swapi-gateway/internal/domain"
)

// ContextKey is the type of context keys set by the API layer.
type ContextKey string

const (
	// UserIDContextKey holds the authenticated user's uuid.UUID.
	UserIDContextKey ContextKey = "userID"

	// RoleContextKey holds the authenticated user's domain.Role.
	RoleContextKey ContextKey = "role"

	// TraceIDKey holds the request trace ID.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID.
	TraceIDLength = 16
)

// SetTraceID adds a new trace ID to ctx.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID returns the trace ID in ctx, or "" if none was set.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// generateTraceID returns 32 hex characters. If crypto/rand fails it falls
// back to a random UUID, which has the same length once dashes are removed.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	return hex.EncodeToString(b)
}

// WithUser stores the authenticated user's id and role in ctx.
func WithUser(ctx context.Context, userID uuid.UUID, role domain.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDContextKey, userID)
	return context.WithValue(ctx, RoleContextKey, role)
}

// GetUserID returns the authenticated user's id.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDContextKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetRole returns the authenticated user's role.
func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(RoleContextKey).(domain.Role)
	return role, ok && role != ""
}
