package newsletter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/newsletter/internal/model"
)

// pollInterval paces the wait for a concurrent attempt's response. There is
// no timeout: if the attempt that claimed the key dies before saving its
// response, waiters spin until the client gives up.
const pollInterval = 100 * time.Millisecond

//go:generate mockgen -source=service.go -destination=../../mocks/service/newsletter/mock.go -package=mocks
type idempotencyRepository interface {
	TryInsert(ctx context.Context, userID uuid.UUID, key string) (bool, error)
	GetResponse(ctx context.Context, userID uuid.UUID, key string) (*model.StoredResponse, error)
	SaveResponse(ctx context.Context, userID uuid.UUID, key string, resp model.StoredResponse) error
}

type issueRepository interface {
	CreateIssueWithTasks(ctx context.Context, issue model.NewsletterIssue) (int64, error)
}

// Service orchestrates idempotent newsletter publishing. Each publish
// attempt first claims its (user, idempotency key) pair; the winning attempt
// stores the issue, fans out delivery tasks and caches its HTTP response,
// while every other attempt waits for and replays that response.
type Service struct {
	issues      issueRepository
	idempotency idempotencyRepository
}

// NewService creates a new newsletter service.
func NewService(issues issueRepository, idempotency idempotencyRepository) *Service {
	return &Service{issues: issues, idempotency: idempotency}
}

// TryBegin claims the (user, key) pair. A nil response means the caller won
// the claim and must publish, then call SaveResponse with the response it
// sent. A non-nil response is the cached response of a previous or concurrent
// attempt and must be returned to the client verbatim.
func (s *Service) TryBegin(ctx context.Context, userID uuid.UUID, key string) (*model.StoredResponse, error) {
	inserted, err := s.idempotency.TryInsert(ctx, userID, key)
	if err != nil {
		return nil, fmt.Errorf("failed to claim idempotency key: %w", err)
	}

	if inserted {
		return nil, nil
	}

	// Another attempt holds the key. Poll until its response is saved.
	for {
		resp, err := s.idempotency.GetResponse(ctx, userID, key)
		if err != nil {
			return nil, fmt.Errorf("failed to get saved response: %w", err)
		}

		if resp != nil {
			return resp, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// PublishIssue stores a new issue and enqueues one delivery task per
// confirmed subscriber, atomically. It returns the issue id and the number
// of tasks enqueued.
func (s *Service) PublishIssue(ctx context.Context, title, text, html string) (uuid.UUID, int64, error) {
	issue := model.NewsletterIssue{
		ID:          uuid.New(),
		Title:       title,
		Text:        text,
		HTML:        html,
		PublishedAt: time.Now().UTC(),
	}

	enqueued, err := s.issues.CreateIssueWithTasks(ctx, issue)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("failed to store issue and enqueue tasks: %w", err)
	}

	zlog.Logger.Info().
		Str("newsletter_issue_id", issue.ID.String()).
		Int64("enqueued_tasks", enqueued).
		Msg("newsletter issue published")

	return issue.ID, enqueued, nil
}

// SaveResponse caches the HTTP response of a completed publish attempt so
// retries of the same idempotency key replay it unchanged.
func (s *Service) SaveResponse(ctx context.Context, userID uuid.UUID, key string, resp model.StoredResponse) error {
	if err := s.idempotency.SaveResponse(ctx, userID, key, resp); err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}

	return nil
}
