package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Role is the authorization role carried by a user and their tokens.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a supported role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole converts a case-insensitive role name into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 8
	// MaxPasswordLength is bcrypt's input limit.
	MaxPasswordLength = 72
)

// User validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrInvalidUsername     = fmt.Errorf("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength)
	ErrPasswordTooShort    = fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	ErrPasswordTooLong     = fmt.Errorf("password must be at most %d characters long", MaxPasswordLength)
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User is a registered account allowed to call the gateway.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Role           Role      `json:"role"`
	Password       string    `json:"-"` // plaintext, only set during registration
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a user with a fresh ID and timestamps. The caller must hash
// Password before the user is stored.
func NewUser(username, password string, role Role) (*User, error) {
	now := time.Now().UTC()
	if role == "" {
		role = RoleUser
	}
	user := &User{
		ID:        uuid.New(),
		Username:  strings.TrimSpace(username),
		Role:      role,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the user's fields. A user without a plaintext password must
// already carry a hash.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if n := utf8.RuneCountInString(u.Username); n < MinUsernameLength || n > MaxUsernameLength {
		return ErrInvalidUsername
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, u.Role)
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
		return nil
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}
