package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/model"
	"github.com/sakif/portfolio-api/internal/repository"
)

// The exact 401 bodies are part of the API contract — the admin SPA
// matches on these messages to decide when to force a re-login.
const (
	msgNoToken     = `{"message":"Not authorized, no token"}`
	msgTokenFailed = `{"message":"Not authorized, token failed"}`
)

// contextKey is unexported so only this package can read or write the
// identity slot in a request context.
type contextKey struct{}

var userKey contextKey

// Gate is the request-level auth guard for admin routes. It extracts the
// bearer token, validates it, resolves the subject to a stored user, and
// attaches that identity to the request context.
//
// Strict controls what happens when a token is valid but its subject no
// longer resolves (the account was deleted after issuance). When false,
// the request proceeds with an empty identity and handlers decide what an
// absent identity means; when true, the gate rejects it outright.
type Gate struct {
	tokens *TokenService
	users  repository.UserRepository
	Strict bool
}

// NewGate creates a Gate around the given token service and user store.
func NewGate(tokens *TokenService, users repository.UserRepository) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Require returns middleware that enforces authentication.
//
// Header contract: `Authorization: Bearer <token>`. A missing header or
// wrong scheme yields 401 "Not authorized, no token"; a present-but-bad
// token yields 401 "Not authorized, token failed".
func (g *Gate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(w, msgNoToken)
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		userID, err := g.tokens.Validate(tokenStr)
		if err != nil {
			unauthorized(w, msgTokenFailed)
			return
		}

		user, err := g.users.GetByID(r.Context(), userID)
		switch {
		case err == nil:
			// Resolved — attach the identity (hash never serializes).
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
		case errors.Is(err, apperror.ErrNotFound) && !g.Strict:
			// Token subject no longer exists. Proceed with an empty
			// identity; /api/auth/profile turns this into a 404.
			next.ServeHTTP(w, r)
		default:
			unauthorized(w, msgTokenFailed)
		}
	})
}

func unauthorized(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(body))
}

func withUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the identity the gate attached, or (nil, false)
// for requests where no identity was resolved.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok && user != nil
}
