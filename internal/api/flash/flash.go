// Package flash carries one-shot messages across redirects in a cookie. The
// message is set right before a redirect and consumed by the next page load,
// which also clears the cookie.
package flash

import (
	"net/http"
	"net/url"

	"github.com/wb-go/wbf/ginext"
)

const cookieName = "_flash"

// Cookie builds the cookie that carries msg to the next request. The message
// is URL-escaped so it survives cookie value restrictions.
func Cookie(msg string) *http.Cookie {
	return &http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
	}
}

// Set attaches a flash message to the outgoing response.
func Set(c *ginext.Context, msg string) {
	http.SetCookie(c.Writer, Cookie(msg))
}

// Pop returns the pending flash message, if any, and clears the cookie so the
// message is shown exactly once.
func Pop(c *ginext.Context) (string, bool) {
	cookie, err := c.Request.Cookie(cookieName)
	if err != nil {
		return "", false
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false
	}

	return msg, true
}
