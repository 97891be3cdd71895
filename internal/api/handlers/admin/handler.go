package admin

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
	"github.com/aliskhannn/newsletter/internal/api/flash"
	"github.com/aliskhannn/newsletter/internal/api/respond"
	authsvc "github.com/aliskhannn/newsletter/internal/auth"
	"github.com/aliskhannn/newsletter/internal/middlewares"
	"github.com/aliskhannn/newsletter/internal/model"
)

// newsletterService defines the interface that the Handler depends on for
// idempotent publishing.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/admin/mock.go -package=mocks
type newsletterService interface {
	TryBegin(ctx context.Context, userID uuid.UUID, key string) (*model.StoredResponse, error)
	PublishIssue(ctx context.Context, title, text, html string) (uuid.UUID, int64, error)
	SaveResponse(ctx context.Context, userID uuid.UUID, key string, resp model.StoredResponse) error
}

type authService interface {
	Verify(ctx context.Context, username, password string) (uuid.UUID, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
}

type userRepository interface {
	GetUsername(ctx context.Context, id uuid.UUID) (string, error)
}

// Handler handles the admin area: dashboard, newsletter publishing and
// password management. All routes assume the session middleware has run.
type Handler struct {
	newsletters newsletterService
	auth        authService
	users       userRepository
	validator   *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(
	n newsletterService,
	a authService,
	u userRepository,
	v *validator.Validate,
) *Handler {
	return &Handler{newsletters: n, auth: a, users: u, validator: v}
}

const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta http-equiv="content-type" content="text/html; charset=utf-8">
    <title>Admin dashboard</title>
</head>
<body>
    <p>Welcome %s!</p>
    <p>Available actions:</p>
    <ol>
        <li><a href="/admin/newsletter">Send a newsletter issue</a></li>
        <li><a href="/admin/password">Change password</a></li>
        <li>
            <form name="logoutForm" action="/admin/logout" method="post">
                <input type="submit" value="Logout">
            </form>
        </li>
    </ol>
</body>
</html>`

// Dashboard renders the admin landing page with a greeting for the logged-in
// user.
func (h *Handler) Dashboard(c *ginext.Context) {
	userID := middlewares.UserID(c)

	username, err := h.users.GetUsername(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get username")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	fmt.Fprintf(c.Writer, dashboardPage, username)
}

const newsletterPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta http-equiv="content-type" content="text/html; charset=utf-8">
    <title>Send a newsletter issue</title>
</head>
<body>
    %s<form action="/admin/newsletter" method="post">
        <label>Title
            <input type="text" placeholder="Enter the issue title" name="title">
        </label>
        <br>
        <label>Plain text content
            <textarea placeholder="Enter the content in plain text" name="text_content" rows="20" cols="50"></textarea>
        </label>
        <br>
        <label>HTML content
            <textarea placeholder="Enter the content in HTML format" name="html_content" rows="20" cols="50"></textarea>
        </label>
        <br>
        <input hidden type="text" name="idempotency_key" value="%s">
        <button type="submit">Publish</button>
    </form>
    <p><a href="/admin/dashboard">&lt;- Back</a></p>
</body>
</html>`

// ShowNewsletterForm renders the publish form. Each render embeds a fresh
// idempotency key, so resubmitting the same rendered form is a retry of the
// same publish attempt rather than a new issue.
func (h *Handler) ShowNewsletterForm(c *ginext.Context) {
	var msgHTML string
	if msg, ok := flash.Pop(c); ok {
		msgHTML = fmt.Sprintf("<p><i>%s</i></p>\n    ", msg)
	}

	c.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	fmt.Fprintf(c.Writer, newsletterPage, msgHTML, uuid.New().String())
}

// Publish handles the newsletter publish form.
//
// The (user, idempotency key) pair is claimed first: the winning attempt
// stores the issue, enqueues delivery tasks and caches the response it is
// about to send, while retries of the same key replay that cached response
// byte for byte without publishing a second issue.
func (h *Handler) Publish(c *ginext.Context) {
	userID := middlewares.UserID(c)

	var req dto.PublishRequest

	if err := c.ShouldBind(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to bind publish form")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate publish form")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	saved, err := h.newsletters.TryBegin(c.Request.Context(), userID, req.IdempotencyKey)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to begin publish attempt")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if saved != nil {
		zlog.Logger.Info().
			Str("user_id", userID.String()).
			Msg("replaying saved response for a retried publish")
		writeStoredResponse(c, *saved)
		return
	}

	issueID, enqueued, err := h.newsletters.PublishIssue(
		c.Request.Context(), req.Title, req.TextContent, req.HTMLContent,
	)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to publish newsletter issue")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	zlog.Logger.Info().
		Str("newsletter_issue_id", issueID.String()).
		Int64("enqueued_tasks", enqueued).
		Msg("newsletter issue accepted")

	resp := model.StoredResponse{
		StatusCode: http.StatusSeeOther,
		Headers: []model.SavedHeader{
			{Name: "Location", Value: []byte("/admin/newsletter")},
			{Name: "Set-Cookie", Value: []byte(flash.Cookie("Successfully sent newsletter.").String())},
		},
	}

	if err := h.newsletters.SaveResponse(c.Request.Context(), userID, req.IdempotencyKey, resp); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to save publish response")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	writeStoredResponse(c, resp)
}

// writeStoredResponse writes a cached response so a retried request gets the
// same status, headers and body as the original attempt.
func writeStoredResponse(c *ginext.Context, resp model.StoredResponse) {
	for _, h := range resp.Headers {
		c.Writer.Header().Add(h.Name, string(h.Value))
	}

	c.Writer.WriteHeader(resp.StatusCode)

	if len(resp.Body) > 0 {
		if _, err := c.Writer.Write(resp.Body); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to write saved response body")
		}
	}
}

const passwordPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta http-equiv="content-type" content="text/html; charset=utf-8">
    <title>Change password</title>
</head>
<body>
    %s<form action="/admin/password" method="post">
        <label>Current password
            <input type="password" placeholder="Enter current password" name="current_password">
        </label>
        <br>
        <label>New password
            <input type="password" placeholder="Enter new password" name="new_password">
        </label>
        <br>
        <label>Confirm new password
            <input type="password" placeholder="Type the new password again" name="new_password_check">
        </label>
        <br>
        <button type="submit">Change password</button>
    </form>
    <p><a href="/admin/dashboard">&lt;- Back</a></p>
</body>
</html>`

// ShowPasswordForm renders the password change form with any pending flash
// message.
func (h *Handler) ShowPasswordForm(c *ginext.Context) {
	var msgHTML string
	if msg, ok := flash.Pop(c); ok {
		msgHTML = fmt.Sprintf("<p><i>%s</i></p>\n    ", msg)
	}

	c.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	fmt.Fprintf(c.Writer, passwordPage, msgHTML)
}

// ChangePassword handles the password change form. The current password must
// verify before the new one is stored, and both copies of the new password
// must match.
func (h *Handler) ChangePassword(c *ginext.Context) {
	userID := middlewares.UserID(c)

	var req dto.ChangePasswordRequest

	if err := c.ShouldBind(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to bind password form")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate password form")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if req.NewPassword != req.NewPasswordCheck {
		flash.Set(c, "You entered two different new passwords - the field values must match.")
		c.Redirect(http.StatusSeeOther, "/admin/password")
		return
	}

	username, err := h.users.GetUsername(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get username")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if _, err := h.auth.Verify(c.Request.Context(), username, req.CurrentPassword); err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			flash.Set(c, "The current password is incorrect.")
			c.Redirect(http.StatusSeeOther, "/admin/password")
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to verify current password")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), userID, req.NewPassword); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to change password")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	flash.Set(c, "Your password has been changed.")
	c.Redirect(http.StatusSeeOther, "/admin/password")
}
