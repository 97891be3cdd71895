package worker

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/newsletter/internal/model"
	"github.com/aliskhannn/newsletter/internal/repository/newsletter"
)

//go:generate mockgen -source=delivery.go -destination=../mocks/worker/mock.go -package=mocks
type deliveryQueue interface {
	ProcessNextTask(ctx context.Context, deliver newsletter.DeliverFunc) (newsletter.Outcome, error)
}

type emailSender interface {
	Send(to, subject, htmlBody, textBody string) error
}

// Deliverer drains the issue delivery queue and sends newsletter issues to
// confirmed subscribers. Multiple workers can run against the same queue;
// row locking in the queue keeps them from picking the same task twice.
type Deliverer struct {
	queue     deliveryQueue
	sender    emailSender
	validator *validator.Validate

	emptyQueueBackoff time.Duration
	errorBackoff      time.Duration
}

// NewDeliverer creates a new delivery worker.
func NewDeliverer(
	q deliveryQueue,
	s emailSender,
	v *validator.Validate,
	emptyQueueBackoff, errorBackoff time.Duration,
) *Deliverer {
	return &Deliverer{
		queue:             q,
		sender:            s,
		validator:         v,
		emptyQueueBackoff: emptyQueueBackoff,
		errorBackoff:      errorBackoff,
	}
}

// Run processes delivery tasks until ctx is cancelled. An empty queue backs
// off before polling again; a failed dequeue backs off briefly so a broken
// database connection does not spin the loop.
func (d *Deliverer) Run(ctx context.Context, workerCount int) {
	var wg sync.WaitGroup

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("delivery worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("delivery worker-%d shutting down", id)
					return
				default:
				}

				outcome, err := d.queue.ProcessNextTask(ctx, d.deliver)
				if err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to process delivery task")
					d.pause(ctx, d.errorBackoff)
					continue
				}

				if outcome == newsletter.EmptyQueue {
					d.pause(ctx, d.emptyQueueBackoff)
				}
			}
		}(i)
	}

	wg.Wait()
	zlog.Logger.Print("delivery worker stopped")
}

// deliver sends one issue to one subscriber. It never reports failure: a
// task is consumed exactly once whether the send succeeds or not, so a
// permanently undeliverable address cannot wedge the queue. Skipped and
// failed sends are logged for operators.
func (d *Deliverer) deliver(task model.DeliveryTask, issue model.NewsletterIssue) {
	if err := d.validator.Var(task.Email, "required,email"); err != nil {
		zlog.Logger.Warn().
			Str("email", task.Email).
			Str("newsletter_issue_id", task.IssueID.String()).
			Msg("skipping task with invalid subscriber email")
		return
	}

	if err := d.sender.Send(task.Email, issue.Title, issue.HTML, issue.Text); err != nil {
		zlog.Logger.Error().Err(err).
			Str("email", task.Email).
			Str("newsletter_issue_id", task.IssueID.String()).
			Msg("failed to deliver issue to a confirmed subscriber")
	}
}

func (d *Deliverer) pause(ctx context.Context, dur time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(dur):
	}
}
