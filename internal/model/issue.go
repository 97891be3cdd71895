package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterIssue represents a published newsletter issue.
// Issues are immutable once created.
type NewsletterIssue struct {
	ID          uuid.UUID `json:"id"`           // unique identifier for the issue
	Title       string    `json:"title"`        // issue title, used as the email subject
	Text        string    `json:"text"`         // plain-text body
	HTML        string    `json:"html"`         // HTML body
	PublishedAt time.Time `json:"published_at"` // timestamp when the issue was published
}

// DeliveryTask represents one unit of delivery work: "send this issue to
// this subscriber". Tasks are enqueued in the same transaction as the issue
// insert and removed by the delivery worker after a single attempt.
type DeliveryTask struct {
	IssueID uuid.UUID `json:"newsletter_issue_id"` // issue to deliver
	Email   string    `json:"subscriber_email"`    // recipient address as stored at publish time
}
