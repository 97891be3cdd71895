package idempotency

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/newsletter/internal/model"
)

// Repository provides access to the idempotency table, the durable mapping
// from (user, idempotency key) to a previously completed HTTP response.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new idempotency repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// TryInsert attempts to claim the (user, key) pair by inserting a record with
// null response fields. It reports true when the row was actually inserted,
// meaning the caller won the race and must perform the work. A false result
// means another attempt already holds the pair and its response should be
// awaited instead.
func (r *Repository) TryInsert(ctx context.Context, userID uuid.UUID, key string) (bool, error) {
	query := `
		INSERT INTO idempotency (user_id, idempotency_key, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING;
    `

	res, err := r.db.ExecContext(ctx, query, userID, key, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to insert idempotency record: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows > 0, nil
}

// GetResponse reconstructs the cached HTTP response for (user, key).
// It returns nil when the record does not exist or when its response fields
// have not been populated yet.
func (r *Repository) GetResponse(ctx context.Context, userID uuid.UUID, key string) (*model.StoredResponse, error) {
	query := `
		SELECT response_status_code, response_headers, response_body
		FROM idempotency
		WHERE user_id = $1 AND idempotency_key = $2;
    `

	var (
		statusCode sql.NullInt32
		headers    []byte
		body       []byte
	)

	err := r.db.Master.QueryRowContext(ctx, query, userID, key).Scan(&statusCode, &headers, &body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get saved response: %w", err)
	}

	if !statusCode.Valid {
		return nil, nil
	}

	resp := model.StoredResponse{
		StatusCode: int(statusCode.Int32),
		Body:       body,
	}

	if err := json.Unmarshal(headers, &resp.Headers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved headers: %w", err)
	}

	return &resp, nil
}

// SaveResponse populates the response fields of an existing idempotency
// record. It must only be called by the attempt that won TryInsert.
func (r *Repository) SaveResponse(ctx context.Context, userID uuid.UUID, key string, resp model.StoredResponse) error {
	headers, err := json.Marshal(resp.Headers)
	if err != nil {
		return fmt.Errorf("failed to marshal response headers: %w", err)
	}

	query := `
		UPDATE idempotency
		SET response_status_code = $1, response_headers = $2, response_body = $3
		WHERE user_id = $4 AND idempotency_key = $5;
    `

	if _, err := r.db.ExecContext(ctx, query, resp.StatusCode, headers, resp.Body, userID, key); err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}

	return nil
}
