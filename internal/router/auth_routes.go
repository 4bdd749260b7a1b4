package router

import (
	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/handler"
	"github.com/averose/luxe-travel-cms/internal/middleware"
)

// RegisterAuth registers the authentication endpoints. Login is rate
// limited per client IP to slow down credential stuffing; /me requires a
// valid access token. There is no logout endpoint: tokens are short-lived
// and logout is the client discarding its copy.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, secret string, users middleware.UserLoader, limit echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	g.POST("/login", a.Login, limit)
	g.GET("/me", a.Me, middleware.Authenticate(secret, users))
}
