package swapi

import (
	"errors"
	"fmt"

	"github.com/phrazzld/swapi-gateway/internal/domain"
)

var (
	// ErrUnavailable wraps transport failures: dial errors, timeouts, resets
	// and cancelled contexts.
	ErrUnavailable = errors.New("swapi unavailable")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed swapi response")
)

// StatusError is returned for any non-2xx upstream answer.
type StatusError struct {
	StatusCode int
	Kind       domain.ResourceKind
	// ID is empty for list and search calls.
	ID   string
	Body string
}

func (e *StatusError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("swapi %s/%s: status %d", e.Kind, e.ID, e.StatusCode)
	}
	return fmt.Sprintf("swapi %s: status %d", e.Kind, e.StatusCode)
}
