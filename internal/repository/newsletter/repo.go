package newsletter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/newsletter/internal/model"
)

// Outcome reports what a single worker iteration accomplished.
type Outcome int

const (
	// TaskCompleted means one delivery task was claimed and removed.
	TaskCompleted Outcome = iota
	// EmptyQueue means no unclaimed task was available.
	EmptyQueue
)

// DeliverFunc handles one claimed delivery task. It is invoked while the
// task row is locked; the row is removed afterwards regardless of the
// delivery outcome, so implementations must log their own failures.
type DeliverFunc func(task model.DeliveryTask, issue model.NewsletterIssue)

// Repository provides access to the newsletter_issues table and the
// issue_delivery_queue work list.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new newsletter repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateIssueWithTasks stores a newsletter issue and fans out one delivery
// task per confirmed subscriber in a single transaction. Either both the
// issue row and all of its tasks are committed, or none are.
//
// It returns the number of delivery tasks enqueued.
func (r *Repository) CreateIssueWithTasks(ctx context.Context, issue model.NewsletterIssue) (int64, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	issueQuery := `
		INSERT INTO newsletter_issues (newsletter_issue_id, title, text, html, published_at)
		VALUES ($1, $2, $3, $4, $5);
    `

	if _, err = tx.ExecContext(
		ctx, issueQuery, issue.ID, issue.Title, issue.Text, issue.HTML, issue.PublishedAt,
	); err != nil {
		return 0, fmt.Errorf("failed to insert newsletter issue: %w", err)
	}

	enqueueQuery := `
		INSERT INTO issue_delivery_queue (newsletter_issue_id, subscriber_email)
		SELECT $1, email
		FROM subscriptions
		WHERE status = $2;
    `

	res, err := tx.ExecContext(ctx, enqueueQuery, issue.ID, model.StatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue delivery tasks: %w", err)
	}

	enqueued, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return enqueued, nil
}

// ProcessNextTask claims at most one delivery task under a row lock, hands it
// to deliver together with its issue content, and removes it before
// committing. "FOR UPDATE SKIP LOCKED" guarantees concurrent workers never
// claim the same row and never block each other, so the method is safe to
// call from multiple processes.
func (r *Repository) ProcessNextTask(ctx context.Context, deliver DeliverFunc) (Outcome, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return EmptyQueue, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	dequeueQuery := `
		SELECT newsletter_issue_id, subscriber_email
		FROM issue_delivery_queue
		FOR UPDATE SKIP LOCKED
		LIMIT 1;
    `

	var task model.DeliveryTask
	err = tx.QueryRowContext(ctx, dequeueQuery).Scan(&task.IssueID, &task.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmptyQueue, nil
		}

		return EmptyQueue, fmt.Errorf("failed to dequeue task: %w", err)
	}

	issue, err := getIssue(ctx, tx, task.IssueID)
	if err != nil {
		return EmptyQueue, fmt.Errorf("failed to get newsletter issue: %w", err)
	}

	deliver(task, issue)

	deleteQuery := `
		DELETE FROM issue_delivery_queue
		WHERE newsletter_issue_id = $1 AND subscriber_email = $2;
    `

	if _, err = tx.ExecContext(ctx, deleteQuery, task.IssueID, task.Email); err != nil {
		return EmptyQueue, fmt.Errorf("failed to delete task: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return EmptyQueue, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return TaskCompleted, nil
}

func getIssue(ctx context.Context, tx *sql.Tx, issueID uuid.UUID) (model.NewsletterIssue, error) {
	query := `
		SELECT newsletter_issue_id, title, text, html, published_at
		FROM newsletter_issues
		WHERE newsletter_issue_id = $1;
    `

	var issue model.NewsletterIssue
	err := tx.QueryRowContext(ctx, query, issueID).Scan(
		&issue.ID, &issue.Title, &issue.Text, &issue.HTML, &issue.PublishedAt,
	)
	if err != nil {
		return model.NewsletterIssue{}, err
	}

	return issue, nil
}
