// Package http provides HTTP handlers for user registration and login.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okoshkina/fittrack/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates the user and issues a first bearer token.
	Register(ctx context.Context, login string) (string, error)
	// Login issues a fresh bearer token for an existing login.
	Login(ctx context.Context, login string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// credentialsRequest represents the JSON payload for registration and login.
type credentialsRequest struct {
	// Login is the username to register or log in with.
	Login string `json:"login"`
}

// tokenResponse carries an issued bearer token back to the client.
type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles user registration requests.
// It expects a JSON body with a non-empty "login" field and responds with a
// bearer token. An already-taken login yields 409.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Register(r.Context(), req.Login)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tokenResponse{Token: token})
}

// Login handles login requests for existing users.
// An unknown login yields 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Login)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) {
			http.Error(w, "unknown user", http.StatusUnauthorized)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tokenResponse{Token: token})
}
