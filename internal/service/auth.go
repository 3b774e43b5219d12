// Package service provides business-logic services for authentication and
// snapshot synchronization, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// tokenTTL is how long an issued bearer token stays valid.
const tokenTTL = 30 * 24 * time.Hour

// ErrUserExists is returned when registering an already-taken login.
var ErrUserExists = errors.New("user already exists")

// ErrUnknownUser is returned when logging in with an unregistered login.
var ErrUnknownUser = errors.New("unknown user")

// AuthRepository defines the persistence operations
// required by the authentication service.
type AuthRepository interface {
	// UserExists returns true if a user with the given login exists.
	UserExists(ctx context.Context, login string) (bool, error)
	// RegisterUser creates a new user record with the given login.
	RegisterUser(ctx context.Context, login string) error
	// StoreToken persists a bearer token for the login with the given expiry.
	StoreToken(ctx context.Context, token, login string, expiresAt time.Time) error
	// UserForToken resolves an unexpired token to its login, empty if unknown.
	UserForToken(ctx context.Context, token string) (string, error)
}

// AuthService implements registration, login, and token validation by
// delegating to an AuthRepository. Tokens are opaque uuids; the identity
// provider proper is out of scope, this is the minimal backend surface the
// client needs.
type AuthService struct {
	repo AuthRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register creates the user and issues a first bearer token.
// Returns ErrUserExists if the login is taken.
func (s *AuthService) Register(ctx context.Context, login string) (string, error) {
	exists, err := s.repo.UserExists(ctx, login)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrUserExists
	}
	if err := s.repo.RegisterUser(ctx, login); err != nil {
		return "", err
	}
	return s.issueToken(ctx, login)
}

// Login issues a fresh bearer token for an existing login.
// Returns ErrUnknownUser if the login is not registered.
func (s *AuthService) Login(ctx context.Context, login string) (string, error) {
	exists, err := s.repo.UserExists(ctx, login)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrUnknownUser
	}
	return s.issueToken(ctx, login)
}

// UserForToken resolves a bearer token to its login for the auth middleware.
func (s *AuthService) UserForToken(ctx context.Context, token string) (string, error) {
	return s.repo.UserForToken(ctx, token)
}

func (s *AuthService) issueToken(ctx context.Context, login string) (string, error) {
	token := uuid.NewString()
	if err := s.repo.StoreToken(ctx, token, login, time.Now().Add(tokenTTL)); err != nil {
		return "", err
	}
	return token, nil
}
