package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/middleware"
	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
)

// MediaHandler accepts multipart uploads into the media library and
// exposes CRUD over media metadata. Files land in UploadDir under a
// server-assigned uuid name so an uploaded "../../etc/passwd" or a
// duplicate "photo.jpg" can never clobber anything.
type MediaHandler struct {
	Media     *repository.MediaRepo
	UploadDir string
	MaxBytes  int64
}

func NewMediaHandler(media *repository.MediaRepo, uploadDir string, maxBytes int64) *MediaHandler {
	return &MediaHandler{Media: media, UploadDir: uploadDir, MaxBytes: maxBytes}
}

// allowedMime lists the upload types the site serves. Everything else is
// rejected with a 400.
var allowedMime = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/avif":      true,
	"image/svg+xml":   true,
	"application/pdf": true, // brochures
}

// Upload handles POST /api/cms/media with a multipart "file" field plus
// optional alt/caption fields. Oversized files return 413.
func (h *MediaHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": echo.Map{"file": "file is required"}})
	}
	if fh.Size > h.MaxBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "file too large"})
	}
	mime := fh.Header.Get("Content-Type")
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if !allowedMime[mime] {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": echo.Map{"file": "unsupported file type"}})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": echo.Map{"file": "could not read upload"}})
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	stored := uuid.NewString() + ext
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		c.Logger().Errorf("mkdir upload dir: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	dst, err := os.Create(filepath.Join(h.UploadDir, stored))
	if err != nil {
		c.Logger().Errorf("create upload file: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	defer dst.Close()
	// Copy with a hard cap in case the declared size lied.
	n, err := io.Copy(dst, io.LimitReader(src, h.MaxBytes+1))
	if err != nil {
		_ = os.Remove(dst.Name())
		c.Logger().Errorf("write upload file: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	if n > h.MaxBytes {
		_ = os.Remove(dst.Name())
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "file too large"})
	}

	m := &model.Media{
		Filename:     stored,
		OriginalName: fh.Filename,
		MimeType:     mime,
		Size:         n,
		URL:          "/uploads/" + stored,
		AltEN:        c.FormValue("alt_en"),
		AltES:        c.FormValue("alt_es"),
		AltFR:        c.FormValue("alt_fr"),
		AltJA:        c.FormValue("alt_ja"),
		Caption:      c.FormValue("caption"),
	}
	if u := middleware.CurrentUser(c); u != nil {
		m.UploadedBy = &u.ID
	}
	created, err := h.Media.Create(c.Request().Context(), m)
	if err != nil {
		_ = os.Remove(dst.Name())
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"media": created})
}

// List handles GET /api/cms/media.
func (h *MediaHandler) List(c echo.Context) error {
	items, err := h.Media.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	if items == nil {
		items = []*model.Media{}
	}
	return c.JSON(http.StatusOK, echo.Map{"media": items})
}

// Get handles GET /api/cms/media/:id.
func (h *MediaHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	m, err := h.Media.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"media": m})
}

type mediaReq struct {
	AltEN   *string `json:"alt_en"`
	AltES   *string `json:"alt_es"`
	AltFR   *string `json:"alt_fr"`
	AltJA   *string `json:"alt_ja"`
	Caption *string `json:"caption"`
}

// Update handles PUT /api/cms/media/:id for alt text and caption.
func (h *MediaHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req mediaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	m, err := h.Media.Update(c.Request().Context(), id, repository.MediaUpdate{
		AltEN:   req.AltEN,
		AltES:   req.AltES,
		AltFR:   req.AltFR,
		AltJA:   req.AltJA,
		Caption: req.Caption,
	})
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"media": m})
}

// Delete handles DELETE /api/cms/media/:id, removing the file from disk
// after the row. A missing file on disk is not an error; the row is the
// source of truth.
func (h *MediaHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	m, err := h.Media.GetByID(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	ok, err := h.Media.Delete(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	if ok {
		_ = os.Remove(filepath.Join(h.UploadDir, filepath.Base(m.Filename)))
	}
	return deleted(c, ok, "media not found")
}
