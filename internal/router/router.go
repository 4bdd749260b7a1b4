package router // router defines how HTTP routes are registered for the API

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication and
// are not part of the content API: the health probe and the static file
// mount for uploaded media.
func RegisterRoutes(e *echo.Echo, db *sql.DB, uploadDir string) {
	// Load balancers and uptime monitors hit this; it also pings the DB.
	e.GET("/healthz", handler.Health(db))

	// Uploaded media is served straight from disk under /uploads/<filename>.
	e.Static("/uploads", uploadDir)
}
