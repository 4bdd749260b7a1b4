package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/validate"
)

// CategoryHandler exposes admin CRUD over tour categories.
type CategoryHandler struct {
	Categories *repository.CategoryRepo
}

func NewCategoryHandler(categories *repository.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

type categoryReq struct {
	Slug          *string `json:"slug"`
	NameEN        *string `json:"name_en"`
	NameES        *string `json:"name_es"`
	NameFR        *string `json:"name_fr"`
	NameJA        *string `json:"name_ja"`
	DescriptionEN *string `json:"description_en"`
	Image         *string `json:"image"`
	SortOrder     *int    `json:"sort_order"`
}

// List handles GET /api/cms/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	items, err := h.Categories.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	if items == nil {
		items = []*model.Category{}
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": items})
}

// Get handles GET /api/cms/categories/:id.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	cat, err := h.Categories.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"category": cat})
}

// Create handles POST /api/cms/categories.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	slug := deriveSlug(str(req.Slug), str(req.NameEN))
	errs := validate.Catalog(slug, str(req.NameEN))
	if slug == "" {
		errs["slug"] = "slug is required when it cannot be derived from name_en"
	}
	if !errs.OK() {
		return validationFailed(c, errs)
	}
	cat := &model.Category{
		Slug:          slug,
		NameEN:        str(req.NameEN),
		NameES:        str(req.NameES),
		NameFR:        str(req.NameFR),
		NameJA:        str(req.NameJA),
		DescriptionEN: str(req.DescriptionEN),
		Image:         str(req.Image),
	}
	if req.SortOrder != nil {
		cat.SortOrder = *req.SortOrder
	}
	created, err := h.Categories.Create(c.Request().Context(), cat)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"category": created})
}

// Update handles PUT /api/cms/categories/:id with partial fields.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	errs := validate.Errors{}
	if req.Slug != nil {
		errs.Slug(*req.Slug)
	}
	if req.NameEN != nil && !validate.NonEmptyTrimmed(*req.NameEN) {
		errs["name_en"] = "name_en cannot be emptied"
	}
	if !errs.OK() {
		return validationFailed(c, errs)
	}
	cat, err := h.Categories.Update(c.Request().Context(), id, repository.CategoryUpdate{
		Slug:          req.Slug,
		NameEN:        req.NameEN,
		NameES:        req.NameES,
		NameFR:        req.NameFR,
		NameJA:        req.NameJA,
		DescriptionEN: req.DescriptionEN,
		Image:         req.Image,
		SortOrder:     req.SortOrder,
	})
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"category": cat})
}

// Delete handles DELETE /api/cms/categories/:id. Tours in the category
// are kept and lose their category reference.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	ok, err := h.Categories.Delete(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return deleted(c, ok, "category not found")
}
