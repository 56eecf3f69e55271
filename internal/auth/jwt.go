// Package auth provides JWT issuance/validation, password hashing, and
// the request gate that protects admin routes.
//
// The flow is deliberately minimal: login issues a signed bearer token
// carrying the admin's user ID in the "sub" claim, valid for one hour.
// There is no refresh or rotation — after expiry the admin logs in again.
// Because the token is self-contained, validating it needs no store
// lookup, only the shared secret.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenLifetime is how long an issued token stays valid.
const tokenLifetime = time.Hour

const issuer = "portfolio-api"

// ErrInvalidToken is returned by Validate for any unusable token —
// bad signature, malformed structure, wrong issuer, or expired. Callers
// that need to distinguish expiry can unwrap jwt.ErrTokenExpired.
var ErrInvalidToken = errors.New("auth: invalid token")

// TokenService signs and verifies bearer tokens with a shared HMAC secret.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService. The secret must be non-empty;
// anything stronger is the operator's responsibility (main warns when the
// insecure built-in default is in effect).
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("auth: JWT secret must not be empty")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

type claims struct {
	jwt.RegisteredClaims
}

// Generate issues a signed token for the given user ID, valid for one hour.
func (s *TokenService) Generate(userID string) (string, error) {
	return s.GenerateWithDuration(userID, tokenLifetime)
}

// GenerateWithDuration issues a token with a custom lifetime. Used by
// tests to mint already-expired tokens.
func (s *TokenService) GenerateWithDuration(userID string, d time.Duration) (string, error) {
	now := time.Now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a token string and returns the user ID
// from its "sub" claim.
//
// WithValidMethods pins the algorithm to HS256 — without it, a token
// claiming alg "none" could slip through (algorithm confusion).
func (s *TokenService) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}

	if c.Subject == "" {
		return "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}

	return c.Subject, nil
}
