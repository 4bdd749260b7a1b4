package handler // handler defines http handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/utils"
	"github.com/averose/luxe-travel-cms/internal/validate"
)

// parseID parses the :id route parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// badID is the uniform response for a non-numeric :id parameter.
func badID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
}

// validationFailed returns 400 with the per-field error map.
func validationFailed(c echo.Context, errs validate.Errors) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
}

// deriveSlug returns the explicit slug when given, otherwise one derived
// from the English title. An empty result means neither source could
// produce a slug and the caller must reject the input.
func deriveSlug(explicit, titleEN string) string {
	if explicit != "" {
		return explicit
	}
	return utils.Slugify(titleEN)
}

// deleted shapes the response of an idempotent delete: ok means a row was
// removed and yields {"success": true}; deleting something already gone is
// a 404 with the entity-specific message.
func deleted(c echo.Context, ok bool, missing string) error {
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": missing})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// repoError maps storage sentinels onto HTTP responses: ErrNotFound ->
// 404, ErrDuplicate -> 409 with a slug-level message, anything else ->
// logged 500 with no internal detail exposed.
func repoError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrDuplicate):
		return c.JSON(http.StatusConflict, echo.Map{"errors": echo.Map{"slug": "already in use"}})
	default:
		c.Logger().Errorf("storage error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
