package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/newsletter/internal/session"
)

const userIDKey = "user_id"

type sessionStore interface {
	UserID(ctx context.Context, token string) (uuid.UUID, error)
}

// SessionAuth guards admin pages. A request without a valid session cookie
// is redirected to the login page; otherwise the resolved user id is placed
// in the request context for handlers.
func SessionAuth(store sessionStore) func(c *ginext.Context) {
	return func(c *ginext.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		userID, err := store.UserID(c.Request.Context(), cookie.Value)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the logged-in user id stored by SessionAuth.
func UserID(c *ginext.Context) uuid.UUID {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil
	}

	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return id
}
