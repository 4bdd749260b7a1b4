package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/validate"
)

// PageHandler exposes admin CRUD over pages and their sections.
type PageHandler struct {
	Pages *repository.PageRepo
}

func NewPageHandler(pages *repository.PageRepo) *PageHandler { return &PageHandler{Pages: pages} }

type pageReq struct {
	Slug            *string `json:"slug"`
	TitleEN         *string `json:"title_en"`
	TitleES         *string `json:"title_es"`
	TitleFR         *string `json:"title_fr"`
	TitleJA         *string `json:"title_ja"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	Status          *string `json:"status"`
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// List handles GET /api/cms/pages.
func (h *PageHandler) List(c echo.Context) error {
	items, err := h.Pages.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	if items == nil {
		items = []*model.Page{}
	}
	return c.JSON(http.StatusOK, echo.Map{"pages": items})
}

// Get handles GET /api/cms/pages/:id, sections included.
func (h *PageHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	p, err := h.Pages.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"page": p})
}

// Create handles POST /api/cms/pages. A missing slug is derived from the
// English title; a missing status defaults to draft.
func (h *PageHandler) Create(c echo.Context) error {
	var req pageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	slug := deriveSlug(str(req.Slug), str(req.TitleEN))
	status := str(req.Status)
	if status == "" {
		status = model.StatusDraft
	}
	errs := validate.Page(slug, str(req.TitleEN), status)
	if slug == "" {
		errs["slug"] = "slug is required when it cannot be derived from title_en"
	}
	if !errs.OK() {
		return validationFailed(c, errs)
	}
	p, err := h.Pages.Create(c.Request().Context(), &model.Page{
		Slug:            slug,
		TitleEN:         str(req.TitleEN),
		TitleES:         str(req.TitleES),
		TitleFR:         str(req.TitleFR),
		TitleJA:         str(req.TitleJA),
		MetaTitle:       str(req.MetaTitle),
		MetaDescription: str(req.MetaDescription),
		Status:          status,
	})
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"page": p})
}

// Update handles PUT /api/cms/pages/:id with partial fields.
func (h *PageHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req pageReq
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
	p, err := h.Pages.Update(c.Request().Context(), id, repository.PageUpdate{
		Slug:            req.Slug,
		TitleEN:         req.TitleEN,
		TitleES:         req.TitleES,
		TitleFR:         req.TitleFR,
		TitleJA:         req.TitleJA,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Status:          req.Status,
	})
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"page": p})
}

// Delete handles DELETE /api/cms/pages/:id, removing sections with the
// page.
func (h *PageHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	ok, err := h.Pages.Delete(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return deleted(c, ok, "page not found")
}

// ----- sections -----

type sectionReq struct {
	Type      *string         `json:"type"`
	Content   json.RawMessage `json:"content"`
	SortOrder *int            `json:"sort_order"`
}

// CreateSection handles POST /api/cms/pages/:id/sections.
func (h *PageHandler) CreateSection(c echo.Context) error {
	pageID, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req sectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if errs := validate.Section(str(req.Type), req.Content); !errs.OK() {
		return validationFailed(c, errs)
	}
	s := &model.Section{PageID: pageID, Type: str(req.Type), Content: req.Content}
	if req.SortOrder != nil {
		s.SortOrder = *req.SortOrder
	}
	created, err := h.Pages.CreateSection(c.Request().Context(), s)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"section": created})
}

// UpdateSection handles PUT /api/cms/sections/:id with partial fields.
func (h *PageHandler) UpdateSection(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req sectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	errs := validate.Errors{}
	if req.Type != nil && !validate.NonEmptyTrimmed(*req.Type) {
		errs["type"] = "type cannot be emptied"
	}
	if req.Content != nil && !json.Valid(req.Content) {
		errs["content"] = "content must be a JSON object"
	}
	if !errs.OK() {
		return validationFailed(c, errs)
	}
	s, err := h.Pages.UpdateSection(c.Request().Context(), id, repository.SectionUpdate{
		Type:      req.Type,
		Content:   req.Content,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"section": s})
}

// DeleteSection handles DELETE /api/cms/sections/:id.
func (h *PageHandler) DeleteSection(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	ok, err := h.Pages.DeleteSection(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return deleted(c, ok, "section not found")
}

// ReorderSections handles PUT /api/cms/pages/:id/sections/order with a
// body of {"section_ids": [...]} listing the new top-to-bottom order.
func (h *PageHandler) ReorderSections(c echo.Context) error {
	pageID, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req struct {
		SectionIDs []uint64 `json:"section_ids"`
	}
	if err := c.Bind(&req); err != nil || len(req.SectionIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "section_ids required"})
	}
	if _, err := h.Pages.GetByID(c.Request().Context(), pageID); err != nil {
		return repoError(c, err)
	}
	if err := h.Pages.ReorderSections(c.Request().Context(), pageID, req.SectionIDs); err != nil {
		return repoError(c, err)
	}
	p, err := h.Pages.GetByID(c.Request().Context(), pageID)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"page": p})
}
