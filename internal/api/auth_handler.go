package api

import (
	"net/http"

	"github.com/phrazzld/swapi-gateway/internal/api/shared"
	"github.com/phrazzld/swapi-gateway/internal/platform/logger"
	"github.com/phrazzld/swapi-gateway/internal/service/auth"
)

// AuthHandler handles sign-up and sign-in requests.
type AuthHandler struct {
	auth *auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.auth.SignUp(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SignUpResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	session, err := h.auth.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContext(r.Context()).Debug("user signed in", "role", string(session.Role))
	shared.RespondWithJSON(w, r, http.StatusOK, SignInResponse{
		Token:     session.Token,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	})
}
