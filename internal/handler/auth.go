package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/portfolio-api/internal/auth"
	"github.com/sakif/portfolio-api/internal/service"
)

// AuthHandler exposes register, login, and profile.
//
// Register and login answer the same shape — {_id, username, token} — so
// the SPA can store the token straight from either call. Profile is the
// SPA's session check on load: it answers {_id, username} for a live
// identity and 404 when the gate resolved none.
type AuthHandler struct {
	svc    *service.AuthService
	logger *slog.Logger
}

func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type profileResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// HandleRegister creates an admin account.
//
// HTTP: POST /api/auth/register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		ID:       result.User.ID,
		Username: result.User.Username,
		Token:    result.Token,
	})
}

// HandleLogin verifies credentials and issues a bearer token.
//
// HTTP: POST /api/auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		ID:       result.User.ID,
		Username: result.User.Username,
		Token:    result.Token,
	})
}

// HandleProfile returns the authenticated admin's identity.
//
// HTTP: GET /api/auth/profile (gated)
//
// The gate may have let the request through with no identity (valid token
// whose subject was deleted, in non-strict mode); that surfaces here as
// 404 rather than 401, matching the original API.
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}
