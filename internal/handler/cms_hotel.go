package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/validate"
)

// HotelHandler exposes admin CRUD over partner hotels.
type HotelHandler struct {
	Hotels *repository.HotelRepo
}

func NewHotelHandler(hotels *repository.HotelRepo) *HotelHandler { return &HotelHandler{Hotels: hotels} }

type hotelReq struct {
	Slug          *string         `json:"slug"`
	NameEN        *string         `json:"name_en"`
	NameES        *string         `json:"name_es"`
	NameFR        *string         `json:"name_fr"`
	NameJA        *string         `json:"name_ja"`
	DescriptionEN *string         `json:"description_en"`
	Destination   *string         `json:"destination"`
	Stars         *int            `json:"stars"`
	PriceCents    *int64          `json:"price_cents"`
	Image         *string         `json:"image"`
	Gallery       json.RawMessage `json:"gallery"`
	Featured      *bool           `json:"featured"`
	Published     *bool           `json:"published"`
	SortOrder     *int            `json:"sort_order"`
}

// List handles GET /api/cms/hotels (drafts included).
func (h *HotelHandler) List(c echo.Context) error {
	items, err := h.Hotels.List(c.Request().Context(), false)
	if err != nil {
		return repoError(c, err)
	}
	if items == nil {
		items = []*model.Hotel{}
	}
	return c.JSON(http.StatusOK, echo.Map{"hotels": items})
}

// Get handles GET /api/cms/hotels/:id.
func (h *HotelHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	hotel, err := h.Hotels.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"hotel": hotel})
}

// Create handles POST /api/cms/hotels.
func (h *HotelHandler) Create(c echo.Context) error {
	var req hotelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	slug := deriveSlug(str(req.Slug), str(req.NameEN))
	errs := validate.Catalog(slug, str(req.NameEN))
	if slug == "" {
		errs["slug"] = "slug is required when it cannot be derived from name_en"
	}
	if req.Stars != nil && (*req.Stars < 0 || *req.Stars > 5) {
		errs["stars"] = "stars must be between 0 and 5"
	}
	errs.Gallery(req.Gallery)
	if !errs.OK() {
		return validationFailed(c, errs)
	}
	hotel := &model.Hotel{
		Slug:          slug,
		NameEN:        str(req.NameEN),
		NameES:        str(req.NameES),
		NameFR:        str(req.NameFR),
		NameJA:        str(req.NameJA),
		DescriptionEN: str(req.DescriptionEN),
		Destination:   str(req.Destination),
		Image:         str(req.Image),
		Gallery:       req.Gallery,
	}
	if req.Stars != nil {
		hotel.Stars = *req.Stars
	}
	if req.PriceCents != nil {
		hotel.PriceCents = *req.PriceCents
	}
	if req.Featured != nil {
		hotel.Featured = *req.Featured
	}
	if req.Published != nil {
		hotel.Published = *req.Published
	}
	if req.SortOrder != nil {
		hotel.SortOrder = *req.SortOrder
	}
	created, err := h.Hotels.Create(c.Request().Context(), hotel)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"hotel": created})
}

// Update handles PUT /api/cms/hotels/:id with partial fields.
func (h *HotelHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req hotelReq
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
	if req.Stars != nil && (*req.Stars < 0 || *req.Stars > 5) {
		errs["stars"] = "stars must be between 0 and 5"
	}
	errs.Gallery(req.Gallery)
	if !errs.OK() {
		return validationFailed(c, errs)
	}
	hotel, err := h.Hotels.Update(c.Request().Context(), id, repository.HotelUpdate{
		Slug:          req.Slug,
		NameEN:        req.NameEN,
		NameES:        req.NameES,
		NameFR:        req.NameFR,
		NameJA:        req.NameJA,
		DescriptionEN: req.DescriptionEN,
		Destination:   req.Destination,
		Stars:         req.Stars,
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
	return c.JSON(http.StatusOK, echo.Map{"hotel": hotel})
}

// Delete handles DELETE /api/cms/hotels/:id.
func (h *HotelHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	ok, err := h.Hotels.Delete(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return deleted(c, ok, "hotel not found")
}
