package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/middleware"
	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/validate"
)

// PostHandler exposes admin CRUD over blog posts.
type PostHandler struct {
	Posts *repository.PostRepo
}

func NewPostHandler(posts *repository.PostRepo) *PostHandler { return &PostHandler{Posts: posts} }

type postReq struct {
	Slug          *string `json:"slug"`
	TitleEN       *string `json:"title_en"`
	TitleES       *string `json:"title_es"`
	TitleFR       *string `json:"title_fr"`
	TitleJA       *string `json:"title_ja"`
	BodyEN        *string `json:"body_en"`
	BodyES        *string `json:"body_es"`
	BodyFR        *string `json:"body_fr"`
	BodyJA        *string `json:"body_ja"`
	Excerpt       *string `json:"excerpt"`
	FeaturedImage *string `json:"featured_image"`
	Status        *string `json:"status"`
}

// List handles GET /api/cms/posts (drafts included).
func (h *PostHandler) List(c echo.Context) error {
	items, err := h.Posts.List(c.Request().Context(), false)
	if err != nil {
		return repoError(c, err)
	}
	if items == nil {
		items = []*model.Post{}
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": items})
}

// Get handles GET /api/cms/posts/:id.
func (h *PostHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	p, err := h.Posts.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post": p})
}

// Create handles POST /api/cms/posts. The authenticated user becomes the
// author.
func (h *PostHandler) Create(c echo.Context) error {
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	slug := deriveSlug(str(req.Slug), str(req.TitleEN))
	status := str(req.Status)
	if status == "" {
		status = model.StatusDraft
	}
	errs := validate.Post(slug, str(req.TitleEN), status)
	if slug == "" {
		errs["slug"] = "slug is required when it cannot be derived from title_en"
	}
	if !errs.OK() {
		return validationFailed(c, errs)
	}

	p := &model.Post{
		Slug:          slug,
		TitleEN:       str(req.TitleEN),
		TitleES:       str(req.TitleES),
		TitleFR:       str(req.TitleFR),
		TitleJA:       str(req.TitleJA),
		BodyEN:        str(req.BodyEN),
		BodyES:        str(req.BodyES),
		BodyFR:        str(req.BodyFR),
		BodyJA:        str(req.BodyJA),
		Excerpt:       str(req.Excerpt),
		FeaturedImage: str(req.FeaturedImage),
		Status:        status,
	}
	if u := middleware.CurrentUser(c); u != nil {
		p.AuthorID = &u.ID
	}
	created, err := h.Posts.Create(c.Request().Context(), p)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"post": created})
}

// Update handles PUT /api/cms/posts/:id with partial fields.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	errs := validate.Errors{}
	if req.Slug != nil {
		errs.Slug(*req.Slug)
	}
	if req.Status != nil {
		errs.Status(*req.Status)
	}
	if req.TitleEN != nil && !validate.NonEmptyTrimmed(*req.TitleEN) {
		errs["title_en"] = "title_en cannot be emptied"
	}
	if !errs.OK() {
		return validationFailed(c, errs)
	}
	p, err := h.Posts.Update(c.Request().Context(), id, repository.PostUpdate{
		Slug:          req.Slug,
		TitleEN:       req.TitleEN,
		TitleES:       req.TitleES,
		TitleFR:       req.TitleFR,
		TitleJA:       req.TitleJA,
		BodyEN:        req.BodyEN,
		BodyES:        req.BodyES,
		BodyFR:        req.BodyFR,
		BodyJA:        req.BodyJA,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
	})
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post": p})
}

// Delete handles DELETE /api/cms/posts/:id.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	ok, err := h.Posts.Delete(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return deleted(c, ok, "post not found")
}
