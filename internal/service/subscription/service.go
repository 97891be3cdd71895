package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/newsletter/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/subscription/mock.go -package=mocks
type subscriptionRepository interface {
	InsertSubscriber(ctx context.Context, sub model.Subscriber, token string) error
	GetSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, error)
	ConfirmSubscriber(ctx context.Context, id uuid.UUID) error
}

type emailSender interface {
	Send(to, subject, htmlBody, textBody string) error
}

// Service implements the double-opt-in subscription flow: a subscriber is
// stored as pending together with a confirmation token, and becomes confirmed
// only once the emailed token comes back.
type Service struct {
	repo     subscriptionRepository
	sender   emailSender
	baseURL  string
	strategy retry.Strategy
}

// NewService creates a new subscription service. baseURL is the public base
// URL embedded in confirmation links.
func NewService(repo subscriptionRepository, sender emailSender, baseURL string, strategy retry.Strategy) *Service {
	return &Service{
		repo:     repo,
		sender:   sender,
		baseURL:  baseURL,
		strategy: strategy,
	}
}

// CreateSubscription stores a pending subscriber and sends the confirmation
// email. The subscriber row and its token are committed before the email is
// attempted, so a failed send leaves a pending subscriber behind with no way
// to confirm; the error is still surfaced to the caller.
func (s *Service) CreateSubscription(ctx context.Context, name, email string) (uuid.UUID, error) {
	token, err := model.NewSubscriptionToken()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate subscription token: %w", err)
	}

	sub := model.Subscriber{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Status:       model.StatusPendingConfirmation,
		SubscribedAt: time.Now().UTC(),
	}

	if err := s.repo.InsertSubscriber(ctx, sub, token); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert subscriber: %w", err)
	}

	zlog.Logger.Info().Str("subscriber_id", sub.ID.String()).Msg("new subscriber saved")

	if err := s.sendConfirmationEmail(email, token); err != nil {
		return uuid.Nil, fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return sub.ID, nil
}

// ConfirmSubscription resolves a confirmation token and marks the matching
// subscriber as confirmed. Confirming twice is a no-op.
func (s *Service) ConfirmSubscription(ctx context.Context, token string) error {
	id, err := s.repo.GetSubscriberIDByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to resolve subscription token: %w", err)
	}

	if err := s.repo.ConfirmSubscriber(ctx, id); err != nil {
		return fmt.Errorf("failed to confirm subscriber: %w", err)
	}

	return nil
}

func (s *Service) sendConfirmationEmail(email, token string) error {
	link := fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", s.baseURL, token)

	htmlBody := fmt.Sprintf(
		"Welcome to our newsletter! Click <a href=%q>here</a> to confirm your subscription", link,
	)
	textBody := fmt.Sprintf(
		"Welcome to our newsletter! Visit %s to confirm subscription", link,
	)

	return retry.Do(func() error {
		return s.sender.Send(email, "Welcome!", htmlBody, textBody)
	}, s.strategy)
}
