package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/validate"
)

// TourHandler exposes admin CRUD over tours.
type TourHandler struct {
	Tours *repository.TourRepo
}

func NewTourHandler(tours *repository.TourRepo) *TourHandler { return &TourHandler{Tours: tours} }

type tourReq struct {
	Slug          *string         `json:"slug"`
	NameEN        *string         `json:"name_en"`
	NameES        *string         `json:"name_es"`
	NameFR        *string         `json:"name_fr"`
	NameJA        *string         `json:"name_ja"`
	DescriptionEN *string         `json:"description_en"`
	DescriptionES *string         `json:"description_es"`
	DescriptionFR *string         `json:"description_fr"`
	DescriptionJA *string         `json:"description_ja"`
	CategoryID    *uint64         `json:"category_id"`
	Destination   *string         `json:"destination"`
	DurationDays  *int            `json:"duration_days"`
	PriceCents    *int64          `json:"price_cents"`
	Image         *string         `json:"image"`
	Gallery       json.RawMessage `json:"gallery"`
	Featured      *bool           `json:"featured"`
	Published     *bool           `json:"published"`
	SortOrder     *int            `json:"sort_order"`
}

// List handles GET /api/cms/tours (drafts included).
func (h *TourHandler) List(c echo.Context) error {
	items, err := h.Tours.List(c.Request().Context(), repository.TourFilter{})
	if err != nil {
		return repoError(c, err)
	}
	if items == nil {
		items = []*model.Tour{}
	}
	return c.JSON(http.StatusOK, echo.Map{"tours": items})
}

// Get handles GET /api/cms/tours/:id.
func (h *TourHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	t, err := h.Tours.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tour": t})
}

// Create handles POST /api/cms/tours.
func (h *TourHandler) Create(c echo.Context) error {
	var req tourReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	slug := deriveSlug(str(req.Slug), str(req.NameEN))
	errs := validate.Catalog(slug, str(req.NameEN))
	if slug == "" {
		errs["slug"] = "slug is required when it cannot be derived from name_en"
	}
	errs.Gallery(req.Gallery)
	if !errs.OK() {
		return validationFailed(c, errs)
	}
	t := &model.Tour{
		Slug:          slug,
		NameEN:        str(req.NameEN),
		NameES:        str(req.NameES),
		NameFR:        str(req.NameFR),
		NameJA:        str(req.NameJA),
		DescriptionEN: str(req.DescriptionEN),
		DescriptionES: str(req.DescriptionES),
		DescriptionFR: str(req.DescriptionFR),
		DescriptionJA: str(req.DescriptionJA),
		CategoryID:    req.CategoryID,
		Destination:   str(req.Destination),
		Image:         str(req.Image),
		Gallery:       req.Gallery,
	}
	if req.DurationDays != nil {
		t.DurationDays = *req.DurationDays
	}
	if req.PriceCents != nil {
		t.PriceCents = *req.PriceCents
	}
	if req.Featured != nil {
		t.Featured = *req.Featured
	}
	if req.Published != nil {
		t.Published = *req.Published
	}
	if req.SortOrder != nil {
		t.SortOrder = *req.SortOrder
	}
	created, err := h.Tours.Create(c.Request().Context(), t)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"tour": created})
}

// Update handles PUT /api/cms/tours/:id with partial fields.
func (h *TourHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req tourReq
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
	errs.Gallery(req.Gallery)
	if !errs.OK() {
		return validationFailed(c, errs)
	}
	t, err := h.Tours.Update(c.Request().Context(), id, repository.TourUpdate{
		Slug:          req.Slug,
		NameEN:        req.NameEN,
		NameES:        req.NameES,
		NameFR:        req.NameFR,
		NameJA:        req.NameJA,
		DescriptionEN: req.DescriptionEN,
		DescriptionES: req.DescriptionES,
		DescriptionFR: req.DescriptionFR,
		DescriptionJA: req.DescriptionJA,
		CategoryID:    req.CategoryID,
		Destination:   req.Destination,
		DurationDays:  req.DurationDays,
		PriceCents:    req.PriceCents,
		Image:         req.Image,
		Gallery:       req.Gallery,
		Featured:      req.Featured,
		Published:     req.Published,
		SortOrder:     req.SortOrder,
	})
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tour": t})
}

// Delete handles DELETE /api/cms/tours/:id.
func (h *TourHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	ok, err := h.Tours.Delete(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return deleted(c, ok, "tour not found")
}
