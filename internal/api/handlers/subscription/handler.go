package subscription

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/newsletter/internal/api/dto"
	"github.com/aliskhannn/newsletter/internal/api/respond"
	subsrepo "github.com/aliskhannn/newsletter/internal/repository/subscription"
)

// subscriptionService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/subscription/mock.go -package=mocks
type subscriptionService interface {
	CreateSubscription(ctx context.Context, name, email string) (uuid.UUID, error)
	ConfirmSubscription(ctx context.Context, token string) error
}

// Handler handles HTTP requests for the public subscription flow.
type Handler struct {
	service   subscriptionService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s subscriptionService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Subscribe handles HTTP POST requests to start a subscription.
//
// It validates the submitted form, stores the subscriber as pending and
// triggers the confirmation email.
func (h *Handler) Subscribe(c *ginext.Context) {
	var req dto.SubscribeRequest

	if err := c.ShouldBind(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to bind request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	id, err := h.service.CreateSubscription(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("email", req.Email).Msg("failed to create subscription")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, id)
}

// Confirm handles HTTP GET requests that follow a confirmation link.
//
// It expects the subscription token as a query parameter and marks the
// matching subscriber as confirmed.
func (h *Handler) Confirm(c *ginext.Context) {
	token := c.Query("subscription_token")
	if token == "" {
		zlog.Logger.Warn().Msg("missing subscription token")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing subscription_token"))
		return
	}

	if err := h.service.ConfirmSubscription(c.Request.Context(), token); err != nil {
		if errors.Is(err, subsrepo.ErrTokenNotFound) {
			zlog.Logger.Warn().Msg("unknown subscription token")
		} else {
			zlog.Logger.Error().Err(err).Msg("failed to confirm subscription")
		}

		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "subscription confirmed")
}
