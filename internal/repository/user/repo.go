package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
)

var ErrUserNotFound = errors.New("user not found")

// Repository provides methods to interact with the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetCredentials returns the user id and stored password hash for a username.
func (r *Repository) GetCredentials(ctx context.Context, username string) (uuid.UUID, string, error) {
	query := `
		SELECT user_id, password_hash
		FROM users
		WHERE username = $1;
    `

	var (
		id   uuid.UUID
		hash string
	)

	err := r.db.Master.QueryRowContext(ctx, query, username).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, "", ErrUserNotFound
		}

		return uuid.Nil, "", fmt.Errorf("failed to get credentials: %w", err)
	}

	return id, hash, nil
}

// GetUsername returns the username for a user id.
func (r *Repository) GetUsername(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT username
		FROM users
		WHERE user_id = $1;
    `

	var username string
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}

		return "", fmt.Errorf("failed to get username: %w", err)
	}

	return username, nil
}

// UpdatePassword replaces the stored password hash for a user.
func (r *Repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1
		WHERE user_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
