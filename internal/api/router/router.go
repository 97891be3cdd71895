package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/newsletter/internal/api/handlers/admin"
	"github.com/aliskhannn/newsletter/internal/api/handlers/auth"
	"github.com/aliskhannn/newsletter/internal/api/handlers/subscription"
	"github.com/aliskhannn/newsletter/internal/middlewares"
	"github.com/aliskhannn/newsletter/internal/session"
)

func New(
	subs *subscription.Handler,
	login *auth.Handler,
	adm *admin.Handler,
	sessions *session.Store,
) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health_check", func(c *ginext.Context) {
		c.Status(200)
	})

	e.POST("/subscriptions", subs.Subscribe)
	e.GET("/subscriptions/confirm", subs.Confirm)

	e.GET("/login", login.ShowLoginForm)
	e.POST("/login", login.Login)

	adminGroup := e.Group("/admin")
	adminGroup.Use(middlewares.SessionAuth(sessions))
	{
		adminGroup.GET("/dashboard", adm.Dashboard)
		adminGroup.GET("/newsletter", adm.ShowNewsletterForm)
		adminGroup.POST("/newsletter", adm.Publish)
		adminGroup.GET("/password", adm.ShowPasswordForm)
		adminGroup.POST("/password", adm.ChangePassword)
		adminGroup.POST("/logout", login.Logout)
	}

	return e
}
