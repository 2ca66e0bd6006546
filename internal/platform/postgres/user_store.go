package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/platform/logger"
	"github.com/phrazzld/swapi-gateway/internal/store"
)

// PostgresUserStore implements store.UserStore on PostgreSQL.
type PostgresUserStore struct {
	db store.DBTX
}

// NewPostgresUserStore creates a user store. db may be a *sql.DB or a *sql.Tx.
func NewPostgresUserStore(db store.DBTX) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if user.HashedPassword == "" {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}
	// The plaintext is never persisted, so only the stored fields are validated.
	check := *user
	check.Password = ""
	if err := check.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.HashedPassword, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("username already exists", slog.String("username", user.Username))
			return MapUniqueViolation(err, store.ErrUsernameExists)
		}
		log.Error("failed to insert user", slog.String("user_id", user.ID.String()), slog.String("error", err.Error()))
		return store.NewStoreError("user", "create", "insert failed", MapError(err))
	}

	user.Password = ""
	log.Debug("user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role, created_at, updated_at
		FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role, created_at, updated_at
		FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.HashedPassword, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", "query failed", MapError(err))
	}
	u.Role = domain.Role(role)
	return &u, nil
}
