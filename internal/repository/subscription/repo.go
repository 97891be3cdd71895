package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/newsletter/internal/model"
)

var (
	ErrTokenNotFound      = errors.New("subscription token not found")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// Repository provides methods to interact with the subscriptions and
// subscription_tokens tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new subscription repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// InsertSubscriber stores a pending subscriber together with its confirmation
// token in a single transaction.
func (r *Repository) InsertSubscriber(ctx context.Context, sub model.Subscriber, token string) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	subscriberQuery := `
		INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, $4, $5);
    `

	if _, err = tx.ExecContext(
		ctx, subscriberQuery, sub.ID, sub.Email, sub.Name, sub.SubscribedAt, sub.Status,
	); err != nil {
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}

	tokenQuery := `
		INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		VALUES ($1, $2);
    `

	if _, err = tx.ExecContext(ctx, tokenQuery, token, sub.ID); err != nil {
		return fmt.Errorf("failed to insert subscription token: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSubscriberIDByToken resolves a confirmation token to a subscriber id.
func (r *Repository) GetSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, error) {
	query := `
		SELECT subscriber_id
		FROM subscription_tokens
		WHERE subscription_token = $1;
    `

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(ctx, query, token).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrTokenNotFound
		}

		return uuid.Nil, fmt.Errorf("failed to get subscriber id by token: %w", err)
	}

	return id, nil
}

// ConfirmSubscriber marks a subscriber as confirmed. Confirming an already
// confirmed subscriber is a no-op.
func (r *Repository) ConfirmSubscriber(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE subscriptions
		SET status = $1
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, model.StatusConfirmed, id)
	if err != nil {
		return fmt.Errorf("failed to confirm subscriber: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrSubscriberNotFound
	}

	return nil
}
