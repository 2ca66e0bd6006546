package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWrongTokenType indicates a token of another type was presented
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidCredentials is returned by SignIn for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned by SignUp when the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
)

// UsernameTakenError names the username that could not be registered.
type UsernameTakenError struct {
	Username string
}

func (e *UsernameTakenError) Error() string {
	return fmt.Sprintf("Username '%s' is already taken.", e.Username)
}

func (e *UsernameTakenError) Unwrap() error {
	return ErrUsernameTaken
}
