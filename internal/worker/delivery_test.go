package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/newsletter/internal/mocks/worker"
	"github.com/aliskhannn/newsletter/internal/model"
	"github.com/aliskhannn/newsletter/internal/repository/newsletter"
)

func setupDeliverer(t *testing.T) (*Deliverer, *mocks.MockdeliveryQueue, *mocks.MockemailSender) {
	ctrl := gomock.NewController(t)
	mockQueue := mocks.NewMockdeliveryQueue(ctrl)
	mockSender := mocks.NewMockemailSender(ctrl)

	d := NewDeliverer(mockQueue, mockSender, validator.New(), 10*time.Millisecond, 10*time.Millisecond)

	return d, mockQueue, mockSender
}

func TestDeliverer_Run_ProcessesTasks(t *testing.T) {
	d, mockQueue, _ := setupDeliverer(t)

	var processed int32
	mockQueue.EXPECT().
		ProcessNextTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, newsletter.DeliverFunc) (newsletter.Outcome, error) {
			atomic.AddInt32(&processed, 1)
			return newsletter.TaskCompleted, nil
		}).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)

	assert.Greater(t, atomic.LoadInt32(&processed), int32(0))
}

// An empty queue must back off instead of hammering the database.
func TestDeliverer_Run_BacksOffOnEmptyQueue(t *testing.T) {
	d, mockQueue, _ := setupDeliverer(t)
	d.emptyQueueBackoff = time.Hour

	var calls int32
	mockQueue.EXPECT().
		ProcessNextTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, newsletter.DeliverFunc) (newsletter.Outcome, error) {
			atomic.AddInt32(&calls, 1)
			return newsletter.EmptyQueue, nil
		}).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDeliverer_Run_BacksOffOnError(t *testing.T) {
	d, mockQueue, _ := setupDeliverer(t)
	d.errorBackoff = time.Hour

	var calls int32
	mockQueue.EXPECT().
		ProcessNextTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, newsletter.DeliverFunc) (newsletter.Outcome, error) {
			atomic.AddInt32(&calls, 1)
			return newsletter.EmptyQueue, assert.AnError
		}).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDeliver_SendsIssue(t *testing.T) {
	d, _, mockSender := setupDeliverer(t)

	issue := model.NewsletterIssue{
		ID:    uuid.New(),
		Title: "Issue #1",
		Text:  "plain text",
		HTML:  "<p>html</p>",
	}
	task := model.DeliveryTask{IssueID: issue.ID, Email: "user@example.com"}

	mockSender.EXPECT().Send(task.Email, issue.Title, issue.HTML, issue.Text).Return(nil)

	d.deliver(task, issue)
}

func TestDeliver_SkipsInvalidEmail(t *testing.T) {
	d, _, _ := setupDeliverer(t)

	issue := model.NewsletterIssue{ID: uuid.New(), Title: "Issue #1"}
	task := model.DeliveryTask{IssueID: issue.ID, Email: "definitely-not-an-email"}

	// No Send expectation: the sender must not be called at all.
	d.deliver(task, issue)
}

func TestDeliver_LogsSendFailure(t *testing.T) {
	d, _, mockSender := setupDeliverer(t)

	issue := model.NewsletterIssue{ID: uuid.New(), Title: "Issue #1"}
	task := model.DeliveryTask{IssueID: issue.ID, Email: "user@example.com"}

	mockSender.EXPECT().Send(task.Email, issue.Title, issue.HTML, issue.Text).Return(assert.AnError)

	// A failed send is swallowed; the task is still consumed by the queue.
	d.deliver(task, issue)
}
