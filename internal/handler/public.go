package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
)

// PublicHandler serves the read-only website surface. Only published
// content is visible here; drafts are indistinguishable from missing.
type PublicHandler struct {
	Tours      *repository.TourRepo
	Packages   *repository.PackageRepo
	Hotels     *repository.HotelRepo
	Categories *repository.CategoryRepo
	Posts      *repository.PostRepo
	Pages      *repository.PageRepo
}

// ListTours handles GET /api/public/tours. Supports ?category=<slug> and
// ?featured=true.
func (h *PublicHandler) ListTours(c echo.Context) error {
	f := repository.TourFilter{
		PublishedOnly: true,
		CategorySlug:  c.QueryParam("category"),
		FeaturedOnly:  c.QueryParam("featured") == "true",
	}
	tours, err := h.Tours.List(c.Request().Context(), f)
	if err != nil {
		return repoError(c, err)
	}
	if tours == nil {
		tours = []*model.Tour{}
	}
	return c.JSON(http.StatusOK, echo.Map{"tours": tours})
}

// GetTour handles GET /api/public/tours/:slug.
func (h *PublicHandler) GetTour(c echo.Context) error {
	t, err := h.Tours.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tour": t})
}

// ListPackages handles GET /api/public/packages.
func (h *PublicHandler) ListPackages(c echo.Context) error {
	pkgs, err := h.Packages.List(c.Request().Context(), true)
	if err != nil {
		return repoError(c, err)
	}
	if pkgs == nil {
		pkgs = []*model.Package{}
	}
	return c.JSON(http.StatusOK, echo.Map{"packages": pkgs})
}

// GetPackage handles GET /api/public/packages/:slug.
func (h *PublicHandler) GetPackage(c echo.Context) error {
	p, err := h.Packages.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"package": p})
}

// ListHotels handles GET /api/public/hotels.
func (h *PublicHandler) ListHotels(c echo.Context) error {
	hotels, err := h.Hotels.List(c.Request().Context(), true)
	if err != nil {
		return repoError(c, err)
	}
	if hotels == nil {
		hotels = []*model.Hotel{}
	}
	return c.JSON(http.StatusOK, echo.Map{"hotels": hotels})
}

// GetHotel handles GET /api/public/hotels/:slug.
func (h *PublicHandler) GetHotel(c echo.Context) error {
	hotel, err := h.Hotels.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"hotel": hotel})
}

// ListCategories handles GET /api/public/categories.
func (h *PublicHandler) ListCategories(c echo.Context) error {
	cats, err := h.Categories.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	if cats == nil {
		cats = []*model.Category{}
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": cats})
}

// ListPosts handles GET /api/public/posts.
func (h *PublicHandler) ListPosts(c echo.Context) error {
	posts, err := h.Posts.List(c.Request().Context(), true)
	if err != nil {
		return repoError(c, err)
	}
	if posts == nil {
		posts = []*model.Post{}
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

// GetPost handles GET /api/public/posts/:slug.
func (h *PublicHandler) GetPost(c echo.Context) error {
	p, err := h.Posts.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post": p})
}

// GetPage handles GET /api/public/pages/:slug, returning the page with
// its sections in sort order.
func (h *PublicHandler) GetPage(c echo.Context) error {
	p, err := h.Pages.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"page": p})
}
