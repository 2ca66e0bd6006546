package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/swapi-gateway/internal/domain"
)

// SignUpRequest defines the payload for the sign-up endpoint.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SignInRequest defines the payload for the sign-in endpoint.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUpResponse describes the registered user.
type SignUpResponse struct {
	ID       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// SignInResponse carries the issued access token.
type SignInResponse struct {
	Token     string      `json:"token"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// ListResponse is the paged body returned by every list endpoint.
type ListResponse[T any] struct {
	Message      string  `json:"message"`
	TotalRecords int     `json:"total_records"`
	TotalPages   int     `json:"total_pages"`
	Previous     *string `json:"previous"`
	Next         *string `json:"next"`
	Results      []T     `json:"results"`
}

// DetailResponse is the body returned by every by-id endpoint.
type DetailResponse[T any] struct {
	Message string `json:"message"`
	Result  T      `json:"result"`
}

func newListResponse[T any](page domain.PagedResult[T]) ListResponse[T] {
	results := page.Items
	if results == nil {
		results = []T{}
	}
	return ListResponse[T]{
		Message:      page.Message,
		TotalRecords: page.TotalCount,
		TotalPages:   page.TotalPages,
		Previous:     page.Previous,
		Next:         page.Next,
		Results:      results,
	}
}
