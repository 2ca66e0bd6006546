package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/platform/swapi"
)

var (
	// ErrNotFound is the parent of every kind-specific not-found error.
	ErrNotFound = errors.New("resource not found")

	ErrFilmNotFound     = fmt.Errorf("%w: film", ErrNotFound)
	ErrPersonNotFound   = fmt.Errorf("%w: person", ErrNotFound)
	ErrStarshipNotFound = fmt.Errorf("%w: starship", ErrNotFound)
	ErrVehicleNotFound  = fmt.Errorf("%w: vehicle", ErrNotFound)

	// ErrRateLimited is returned when the upstream answered 429.
	ErrRateLimited = errors.New("upstream rate limit exceeded")

	// ErrUpstreamUnavailable is returned when the upstream could not be reached in time.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamStatus is returned for any other non-2xx upstream answer.
	ErrUpstreamStatus = errors.New("unexpected upstream status")

	// ErrUpstreamInvalid is returned when an upstream body cannot be decoded.
	ErrUpstreamInvalid = errors.New("invalid upstream response")

	// ErrNoData is returned when a by-id call succeeded but carried no record.
	ErrNoData = errors.New("upstream returned no data")

	// ErrInvalidQuery is returned for out-of-range page or limit values.
	ErrInvalidQuery = errors.New("invalid query")
)

// NotFoundFor returns the not-found sentinel for kind.
func NotFoundFor(kind domain.ResourceKind) error {
	switch kind {
	case domain.KindFilm:
		return ErrFilmNotFound
	case domain.KindPerson:
		return ErrPersonNotFound
	case domain.KindStarship:
		return ErrStarshipNotFound
	case domain.KindVehicle:
		return ErrVehicleNotFound
	default:
		return ErrNotFound
	}
}

// NotFoundError reports that a record of Kind with ID does not exist upstream.
type NotFoundError struct {
	Kind domain.ResourceKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found.", e.Kind.Label(), e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return NotFoundFor(e.Kind)
}

// RateLimitedError reports an upstream 429. ID is empty for list and search calls.
type RateLimitedError struct {
	Kind domain.ResourceKind
	ID   string
}

func (e *RateLimitedError) Error() string {
	target := e.Kind.String()
	if e.ID != "" {
		target += " ID " + e.ID
	}
	return fmt.Sprintf("Too Many Requests to SWAPI for %s. Please try again later.", target)
}

func (e *RateLimitedError) Unwrap() error {
	return ErrRateLimited
}

// translate converts an upstream client error into a catalog error. id is
// empty for list and search calls, where a 404 is not a record-level miss.
func translate(err error, kind domain.ResourceKind, id string) error {
	if err == nil {
		return nil
	}

	var se *swapi.StatusError
	if errors.As(err, &se) {
		switch {
		case se.StatusCode == http.StatusNotFound && id != "":
			return &NotFoundError{Kind: kind, ID: id}
		case se.StatusCode == http.StatusTooManyRequests:
			return &RateLimitedError{Kind: kind, ID: id}
		default:
			return fmt.Errorf("%w: %w", ErrUpstreamStatus, err)
		}
	}

	switch {
	case errors.Is(err, swapi.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	case errors.Is(err, swapi.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", ErrUpstreamInvalid, err)
	default:
		return err
	}
}
