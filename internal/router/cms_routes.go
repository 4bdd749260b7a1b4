package router

import (
	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/handler"
	"github.com/averose/luxe-travel-cms/internal/middleware"
	"github.com/averose/luxe-travel-cms/internal/model"
)

// CMSHandlers bundles the admin-surface handlers so RegisterCMS does not
// take a dozen parameters.
type CMSHandlers struct {
	Tours      *handler.TourHandler
	Packages   *handler.PackageHandler
	Hotels     *handler.HotelHandler
	Categories *handler.CategoryHandler
	Posts      *handler.PostHandler
	Pages      *handler.PageHandler
	Media      *handler.MediaHandler
	Stats      *handler.StatsHandler
	Inquiries  *handler.InquiryHandler
}

// RegisterCMS registers the authenticated admin surface under /api/cms.
// Every route requires a valid access token; on top of that, reads and
// deletes are admin-only while creates and edits are open to editors too.
func RegisterCMS(e *echo.Echo, h CMSHandlers, secret string, users middleware.UserLoader) {
	auth := middleware.Authenticate(secret, users)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	adminOrEditor := middleware.RequireRole(model.RoleAdmin, model.RoleEditor)

	g := e.Group("/api/cms", auth)

	// ---- Tours ----
	g.GET("/tours", h.Tours.List, adminOnly)
	g.GET("/tours/:id", h.Tours.Get, adminOnly)
	g.POST("/tours", h.Tours.Create, adminOrEditor)
	g.PUT("/tours/:id", h.Tours.Update, adminOrEditor)
	g.DELETE("/tours/:id", h.Tours.Delete, adminOnly)

	// ---- Packages ----
	g.GET("/packages", h.Packages.List, adminOnly)
	g.GET("/packages/:id", h.Packages.Get, adminOnly)
	g.POST("/packages", h.Packages.Create, adminOrEditor)
	g.PUT("/packages/:id", h.Packages.Update, adminOrEditor)
	g.DELETE("/packages/:id", h.Packages.Delete, adminOnly)

	// ---- Hotels ----
	g.GET("/hotels", h.Hotels.List, adminOnly)
	g.GET("/hotels/:id", h.Hotels.Get, adminOnly)
	g.POST("/hotels", h.Hotels.Create, adminOrEditor)
	g.PUT("/hotels/:id", h.Hotels.Update, adminOrEditor)
	g.DELETE("/hotels/:id", h.Hotels.Delete, adminOnly)

	// ---- Categories ----
	g.GET("/categories", h.Categories.List, adminOnly)
	g.GET("/categories/:id", h.Categories.Get, adminOnly)
	g.POST("/categories", h.Categories.Create, adminOrEditor)
	g.PUT("/categories/:id", h.Categories.Update, adminOrEditor)
	g.DELETE("/categories/:id", h.Categories.Delete, adminOnly)

	// ---- Blog posts ----
	g.GET("/posts", h.Posts.List, adminOnly)
	g.GET("/posts/:id", h.Posts.Get, adminOnly)
	g.POST("/posts", h.Posts.Create, adminOrEditor)
	g.PUT("/posts/:id", h.Posts.Update, adminOrEditor)
	g.DELETE("/posts/:id", h.Posts.Delete, adminOnly)

	// ---- Pages & sections ----
	g.GET("/pages", h.Pages.List, adminOnly)
	g.GET("/pages/:id", h.Pages.Get, adminOnly)
	g.POST("/pages", h.Pages.Create, adminOrEditor)
	g.PUT("/pages/:id", h.Pages.Update, adminOrEditor)
	g.DELETE("/pages/:id", h.Pages.Delete, adminOnly)
	g.POST("/pages/:id/sections", h.Pages.CreateSection, adminOrEditor)
	g.PUT("/pages/:id/sections/order", h.Pages.ReorderSections, adminOrEditor)
	g.PUT("/sections/:id", h.Pages.UpdateSection, adminOrEditor)
	g.DELETE("/sections/:id", h.Pages.DeleteSection, adminOnly)

	// ---- Media library ----
	g.GET("/media", h.Media.List, adminOnly)
	g.GET("/media/:id", h.Media.Get, adminOnly)
	g.POST("/media", h.Media.Upload, adminOrEditor)
	g.PUT("/media/:id", h.Media.Update, adminOrEditor)
	g.DELETE("/media/:id", h.Media.Delete, adminOnly)

	// ---- Dashboard ----
	g.GET("/stats", h.Stats.Stats, adminOnly)

	// Inquiry review lives outside /api/cms for historical frontend reasons
	// but is gated the same way.
	e.GET("/api/inquiries", h.Inquiries.List, auth, adminOnly)
}
