package auth

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
	"github.com/aliskhannn/newsletter/internal/session"
)

// credentialVerifier defines the interface that the Handler depends on for
// checking username/password pairs.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/auth/mock.go -package=mocks
type credentialVerifier interface {
	Verify(ctx context.Context, username, password string) (uuid.UUID, error)
}

type sessionStore interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Destroy(ctx context.Context, token string) error
}

// Handler handles the admin login and logout pages.
type Handler struct {
	auth      credentialVerifier
	sessions  sessionStore
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(a credentialVerifier, s sessionStore, v *validator.Validate) *Handler {
	return &Handler{auth: a, sessions: s, validator: v}
}

const loginPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta http-equiv="content-type" content="text/html; charset=utf-8">
    <title>Login</title>
</head>
<body>
    %s<form action="/login" method="post">
        <label>Username
            <input type="text" placeholder="Enter Username" name="username">
        </label>
        <label>Password
            <input type="password" placeholder="Enter Password" name="password">
        </label>
        <button type="submit">Login</button>
    </form>
</body>
</html>`

// ShowLoginForm renders the login page with any pending flash message.
func (h *Handler) ShowLoginForm(c *ginext.Context) {
	var msgHTML string
	if msg, ok := flash.Pop(c); ok {
		msgHTML = fmt.Sprintf("<p><i>%s</i></p>\n    ", msg)
	}

	c.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	fmt.Fprintf(c.Writer, loginPage, msgHTML)
}

// Login handles the login form submission.
//
// Valid credentials rotate the session and redirect to the dashboard; invalid
// credentials redirect back to the login page with a flash message, keeping
// the response identical for unknown usernames and wrong passwords.
func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBind(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to bind login form")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate login form")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	userID, err := h.auth.Verify(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			zlog.Logger.Warn().Str("username", req.Username).Msg("login attempt with invalid credentials")
			flash.Set(c, "Authentication failed")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to verify credentials")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create session")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// Logout destroys the current session and redirects to the login page.
func (h *Handler) Logout(c *ginext.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.sessions.Destroy(c.Request.Context(), cookie.Value); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to destroy session")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	flash.Set(c, "You have successfully logged out.")
	c.Redirect(http.StatusSeeOther, "/login")
}
