// Package repository provides persistence implementations for the
// authentication and snapshot services using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresAuthRepository implements authentication operations using a PostgreSQL database.
type PostgresAuthRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAuthRepository creates a new PostgresAuthRepository with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresAuthRepository(db *sql.DB) *PostgresAuthRepository {
	return &PostgresAuthRepository{DB: db}
}

// UserExists checks whether a user with the specified login exists in the database.
// It returns true if the user exists, false otherwise.
func (r *PostgresAuthRepository) UserExists(ctx context.Context, login string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)`,
		login,
	).Scan(&exists)
	return exists, err
}

// RegisterUser attempts to register a new user with the given login.
// If a user with the same login already exists, the ON CONFLICT DO NOTHING
// clause prevents an error.
func (r *PostgresAuthRepository) RegisterUser(ctx context.Context, login string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (login) VALUES ($1) ON CONFLICT DO NOTHING`,
		login,
	)
	return err
}

// StoreToken persists a bearer token for the login with the given expiry.
func (r *PostgresAuthRepository) StoreToken(ctx context.Context, token, login string, expiresAt time.Time) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO auth_tokens (token, user_login, expires_at) VALUES ($1, $2, $3)`,
		token, login, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("StoreToken failed: %w", err)
	}
	return nil
}

// UserForToken resolves an unexpired bearer token to its login. An unknown
// or expired token yields an empty login with no error.
func (r *PostgresAuthRepository) UserForToken(ctx context.Context, token string) (string, error) {
	var login string
	err := r.DB.QueryRowContext(ctx, `
		SELECT user_login FROM auth_tokens WHERE token = $1 AND expires_at > now()
	`, token).Scan(&login)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("UserForToken failed: %w", err)
	}
	return login, nil
}
