package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/swapi-gateway/internal/api/shared"
	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/service/auth"
	"github.com/phrazzld/swapi-gateway/internal/service/catalog"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, auth.ErrUsernameTaken):
		return http.StatusConflict

	// Catalog errors
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, catalog.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, catalog.ErrUpstreamStatus),
		errors.Is(err, catalog.ErrUpstreamInvalid),
		errors.Is(err, catalog.ErrNoData):
		return http.StatusBadGateway

	// Bad request errors
	case errors.Is(err, catalog.ErrInvalidQuery),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		isValidationErrors(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err. Errors whose
// text is written for clients pass through; everything else gets a fixed
// message so internal details do not leak.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var notFound *catalog.NotFoundError
	var rateLimited *catalog.RateLimitedError
	var taken *auth.UsernameTakenError
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.As(err, &rateLimited):
		return rateLimited.Error()
	case errors.As(err, &taken):
		return taken.Error()
	case errors.As(err, &verrs):
		return SanitizeValidationError(verrs)

	case errors.Is(err, catalog.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, catalog.ErrRateLimited):
		return "Too Many Requests to SWAPI. Please try again later."
	case errors.Is(err, catalog.ErrInvalidQuery):
		return strings.TrimPrefix(err.Error(), catalog.ErrInvalidQuery.Error()+": ")
	case errors.Is(err, catalog.ErrUpstreamUnavailable):
		return "SWAPI is unavailable. Please try again later."
	case errors.Is(err, catalog.ErrNoData):
		return catalog.NoDataMessage
	case errors.Is(err, catalog.ErrUpstreamStatus),
		errors.Is(err, catalog.ErrUpstreamInvalid):
		return "Unexpected response from SWAPI"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, domain.ErrValidation):
		return domainValidationMessage(err)
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err. An empty message selects
// GetSafeErrorMessage.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// domainValidationMessage returns the user-facing part of a wrapped domain
// validation error.
func domainValidationMessage(err error) string {
	for _, known := range []error{
		domain.ErrEmptyUsername,
		domain.ErrInvalidUsername,
		domain.ErrPasswordTooShort,
		domain.ErrPasswordTooLong,
	} {
		if errors.Is(err, known) {
			return "Validation error: " + known.Error()
		}
	}
	return "Validation error"
}

func isValidationErrors(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// SanitizeValidationError turns validator errors into a short message naming
// the first failing field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}
	fe := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
