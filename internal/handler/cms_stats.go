package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
)

// StatsHandler aggregates entity counts for the admin dashboard.
type StatsHandler struct {
	Tours      *repository.TourRepo
	Packages   *repository.PackageRepo
	Hotels     *repository.HotelRepo
	Categories *repository.CategoryRepo
	Posts      *repository.PostRepo
	Pages      *repository.PageRepo
	Media      *repository.MediaRepo
	Inquiries  *repository.InquiryRepo
}

// recentInquiries caps the dashboard preview list.
const recentInquiries = 5

// Stats handles GET /api/cms/stats.
func (h *StatsHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	counts := echo.Map{}
	for _, e := range []struct {
		name  string
		count func() (int64, error)
	}{
		{"tours", func() (int64, error) { return h.Tours.Count(ctx) }},
		{"packages", func() (int64, error) { return h.Packages.Count(ctx) }},
		{"hotels", func() (int64, error) { return h.Hotels.Count(ctx) }},
		{"categories", func() (int64, error) { return h.Categories.Count(ctx) }},
		{"posts", func() (int64, error) { return h.Posts.Count(ctx) }},
		{"pages", func() (int64, error) { return h.Pages.Count(ctx) }},
		{"media", func() (int64, error) { return h.Media.Count(ctx) }},
		{"inquiries", func() (int64, error) { return h.Inquiries.Count(ctx) }},
	} {
		n, err := e.count()
		if err != nil {
			return repoError(c, err)
		}
		counts[e.name] = n
	}

	recent, err := h.Inquiries.List(ctx)
	if err != nil {
		return repoError(c, err)
	}
	if len(recent) > recentInquiries {
		recent = recent[:recentInquiries]
	}
	if recent == nil {
		recent = []*model.Inquiry{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"counts":           counts,
		"recent_inquiries": recent,
	})
}
