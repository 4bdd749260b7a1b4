package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/validate"
)

// PackageHandler exposes admin CRUD over travel packages.
type PackageHandler struct {
	Packages *repository.PackageRepo
}

func NewPackageHandler(packages *repository.PackageRepo) *PackageHandler {
	return &PackageHandler{Packages: packages}
}

type packageReq struct {
	Slug          *string         `json:"slug"`
	NameEN        *string         `json:"name_en"`
	NameES        *string         `json:"name_es"`
	NameFR        *string         `json:"name_fr"`
	NameJA        *string         `json:"name_ja"`
	DescriptionEN *string         `json:"description_en"`
	Destination   *string         `json:"destination"`
	DurationDays  *int            `json:"duration_days"`
	PriceCents    *int64          `json:"price_cents"`
	Image         *string         `json:"image"`
	Gallery       json.RawMessage `json:"gallery"`
	Featured      *bool           `json:"featured"`
	Published     *bool           `json:"published"`
	SortOrder     *int            `json:"sort_order"`
}

// List handles GET /api/cms/packages (drafts included).
func (h *PackageHandler) List(c echo.Context) error {
	items, err := h.Packages.List(c.Request().Context(), false)
	if err != nil {
		return repoError(c, err)
	}
	if items == nil {
		items = []*model.Package{}
	}
	return c.JSON(http.StatusOK, echo.Map{"packages": items})
}

// Get handles GET /api/cms/packages/:id.
func (h *PackageHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	p, err := h.Packages.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"package": p})
}

// Create handles POST /api/cms/packages.
func (h *PackageHandler) Create(c echo.Context) error {
	var req packageReq
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
	p := &model.Package{
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
	if req.DurationDays != nil {
		p.DurationDays = *req.DurationDays
	}
	if req.PriceCents != nil {
		p.PriceCents = *req.PriceCents
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Published != nil {
		p.Published = *req.Published
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}
	created, err := h.Packages.Create(c.Request().Context(), p)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"package": created})
}

// Update handles PUT /api/cms/packages/:id with partial fields.
func (h *PackageHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req packageReq
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
	p, err := h.Packages.Update(c.Request().Context(), id, repository.PackageUpdate{
		Slug:          req.Slug,
		NameEN:        req.NameEN,
		NameES:        req.NameES,
		NameFR:        req.NameFR,
		NameJA:        req.NameJA,
		DescriptionEN: req.DescriptionEN,
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
	return c.JSON(http.StatusOK, echo.Map{"package": p})
}

// Delete handles DELETE /api/cms/packages/:id.
func (h *PackageHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	ok, err := h.Packages.Delete(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return deleted(c, ok, "package not found")
}
