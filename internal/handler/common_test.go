package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averose/luxe-travel-cms/internal/repository"
)

func TestRepoError(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodGet, "/api/cms/tours/99", "")
		require.NoError(t, repoError(c, repository.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not found")
	})

	t.Run("duplicate slug conflicts with field-level message", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodPost, "/api/cms/tours", "")
		require.NoError(t, repoError(c, fmt.Errorf("insert tour: %w", repository.ErrDuplicate)))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"errors":{"slug":"already in use"}}`, rec.Body.String())
	})

	t.Run("anything else is an opaque 500", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodGet, "/api/cms/tours", "")
		require.NoError(t, repoError(c, errors.New("dial tcp: connection refused")))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "dial tcp") // no internals leaked
	})
}

func TestDeleted(t *testing.T) {
	t.Run("removed row", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodDelete, "/api/cms/tours/1", "")
		require.NoError(t, deleted(c, true, "tour not found"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("already gone", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodDelete, "/api/cms/tours/99", "")
		require.NoError(t, deleted(c, false, "tour not found"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "tour not found")
	})
}

func TestDeriveSlug(t *testing.T) {
	assert.Equal(t, "explicit-slug", deriveSlug("explicit-slug", "Some Title"))
	assert.Equal(t, "some-title", deriveSlug("", "Some Title"))
	assert.Equal(t, "", deriveSlug("", "東京ツアー")) // caller must reject
}
