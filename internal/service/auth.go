// Package service contains the business logic layer.
//
// Handlers parse HTTP and delegate here; services validate, enforce the
// API's rules, and call the repositories. Services know nothing about
// HTTP — they return apperror values and the handler layer maps those to
// status codes. Every service takes its repository as an interface, so
// tests inject in-memory mocks instead of SQLite.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/portfolio-api/internal/apperror"
	"github.com/sakif/portfolio-api/internal/auth"
	"github.com/sakif/portfolio-api/internal/model"
	"github.com/sakif/portfolio-api/internal/repository"
)

// AuthService implements register, login, and profile lookup for the
// single-admin auth scheme.
//
// OpenRegistration mirrors the config flag: when false, Register refuses
// outright. Registration is how the first admin account is bootstrapped,
// so deployments typically leave it on until that account exists and then
// turn it off.
type AuthService struct {
	users            repository.UserRepository
	tokens           *auth.TokenService
	passwords        *auth.PasswordService
	openRegistration bool
	logger           *slog.Logger
}

func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	openRegistration bool,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:            users,
		tokens:           tokens,
		passwords:        passwords,
		openRegistration: openRegistration,
		logger:           logger,
	}
}

// AuthResult bundles the account and its freshly issued token — the shape
// of the register/login response bodies.
type AuthResult struct {
	User  *model.User
	Token string
}

// Register creates an admin account and issues a token for it.
func (s *AuthService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	if !s.openRegistration {
		return nil, apperror.Forbidden("Registration is disabled")
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperror.ValidationFailed("", "Please enter all fields")
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
	}

	// A duplicate username comes back as ErrConflict ("User already
	// exists") straight from the repository's UNIQUE constraint.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token for %s: %w", user.ID, err)
	}

	s.logger.Info("admin account registered", slog.String("username", user.Username))

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown username and
// wrong password both yield the same "Invalid credentials" error so the
// response doesn't reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, fmt.Errorf("looking up user %q: %w", username, err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, fmt.Errorf("verifying password for %q: %w", username, err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token for %s: %w", user.ID, err)
	}

	s.logger.Info("admin logged in", slog.String("username", user.Username))

	return &AuthResult{User: user, Token: token}, nil
}
