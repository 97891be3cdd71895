package model

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Subscriber statuses.
const (
	StatusPendingConfirmation = "pending_confirmation"
	StatusConfirmed           = "confirmed"
)

// SubscriptionTokenLength is the length of generated confirmation tokens.
const SubscriptionTokenLength = 25

// Subscriber represents a newsletter subscriber.
type Subscriber struct {
	ID           uuid.UUID `json:"id"`            // unique identifier for the subscriber
	Email        string    `json:"email"`         // subscriber email address
	Name         string    `json:"name"`          // subscriber display name
	Status       string    `json:"status"`        // current state: "pending_confirmation" or "confirmed"
	SubscribedAt time.Time `json:"subscribed_at"` // timestamp when the subscription request was received
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewSubscriptionToken generates a random alphanumeric confirmation token.
// The token is the sole authorization for confirming a subscription, so it
// is drawn from crypto/rand.
func NewSubscriptionToken() (string, error) {
	token := make([]byte, SubscriptionTokenLength)
	max := big.NewInt(int64(len(tokenAlphabet)))

	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		token[i] = tokenAlphabet[n.Int64()]
	}

	return string(token), nil
}
