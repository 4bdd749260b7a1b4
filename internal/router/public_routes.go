package router

import (
	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/handler"
)

// RegisterPublic registers the unauthenticated browse endpoints plus the
// inquiry form. Public reads only ever see published content; the
// handlers enforce that, not the router. The rate limiter guards the one
// anonymous write (inquiry submission) against abuse.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, inq *handler.InquiryHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/api/public")

	// ---- Tours ----
	g.GET("/tours", p.ListTours) // ?category=<slug>&featured=true
	g.GET("/tours/:slug", p.GetTour)

	// ---- Packages ----
	g.GET("/packages", p.ListPackages)
	g.GET("/packages/:slug", p.GetPackage)

	// ---- Hotels ----
	g.GET("/hotels", p.ListHotels)
	g.GET("/hotels/:slug", p.GetHotel)

	// ---- Categories ----
	g.GET("/categories", p.ListCategories)

	// ---- Blog ----
	g.GET("/posts", p.ListPosts)
	g.GET("/posts/:slug", p.GetPost)

	// ---- Pages ----
	g.GET("/pages/:slug", p.GetPage)

	// ---- Inquiry form ----
	e.POST("/api/inquiries", inq.Create, limit)
}
