package subscription

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/newsletter/internal/mocks/service/subscription"
	"github.com/aliskhannn/newsletter/internal/model"
)

func setupService(t *testing.T) (*Service, *mocks.MocksubscriptionRepository, *mocks.MockemailSender) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMocksubscriptionRepository(ctrl)
	mockSender := mocks.NewMockemailSender(ctrl)

	strategy := retry.Strategy{Attempts: 3, Delay: 0}
	svc := NewService(mockRepo, mockSender, "https://newsletter.example.com", strategy)

	return svc, mockRepo, mockSender
}

func TestCreateSubscription(t *testing.T) {
	svc, mockRepo, mockSender := setupService(t)

	var savedToken string
	mockRepo.EXPECT().
		InsertSubscriber(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub model.Subscriber, token string) error {
			assert.Equal(t, "user@example.com", sub.Email)
			assert.Equal(t, "Test User", sub.Name)
			assert.Equal(t, model.StatusPendingConfirmation, sub.Status)
			assert.Len(t, token, model.SubscriptionTokenLength)
			savedToken = token
			return nil
		})

	mockSender.EXPECT().
		Send("user@example.com", "Welcome!", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _, htmlBody, textBody string) error {
			link := "https://newsletter.example.com/subscriptions/confirm?subscription_token=" + savedToken
			assert.Contains(t, htmlBody, link)
			assert.Contains(t, textBody, link)
			return nil
		})

	id, err := svc.CreateSubscription(context.Background(), "Test User", "user@example.com")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestCreateSubscription_RetriesEmail(t *testing.T) {
	svc, mockRepo, mockSender := setupService(t)

	mockRepo.EXPECT().InsertSubscriber(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	gomock.InOrder(
		mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError),
		mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError),
		mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := svc.CreateSubscription(context.Background(), "Test User", "user@example.com")
	assert.NoError(t, err)
}

func TestCreateSubscription_InsertFails(t *testing.T) {
	svc, mockRepo, _ := setupService(t)

	mockRepo.EXPECT().
		InsertSubscriber(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	_, err := svc.CreateSubscription(context.Background(), "Test User", "user@example.com")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to insert subscriber"))
}

func TestConfirmSubscription(t *testing.T) {
	svc, mockRepo, _ := setupService(t)

	id := uuid.New()
	token := "abcdefghijklmnopqrstuvwxy"

	mockRepo.EXPECT().GetSubscriberIDByToken(gomock.Any(), token).Return(id, nil)
	mockRepo.EXPECT().ConfirmSubscriber(gomock.Any(), id).Return(nil)

	err := svc.ConfirmSubscription(context.Background(), token)
	assert.NoError(t, err)
}

func TestConfirmSubscription_UnknownToken(t *testing.T) {
	svc, mockRepo, _ := setupService(t)

	mockRepo.EXPECT().
		GetSubscriberIDByToken(gomock.Any(), "bogus").
		Return(uuid.Nil, assert.AnError)

	err := svc.ConfirmSubscription(context.Background(), "bogus")
	assert.Error(t, err)
}
