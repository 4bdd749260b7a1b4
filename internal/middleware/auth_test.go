package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/utils"
)

const testSecret = "middleware-test-secret"

// stubLoader satisfies UserLoader from a fixed user set.
type stubLoader struct {
	users map[uint64]*model.User
}

func (s *stubLoader) GetByID(_ context.Context, id uint64) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func authedRequest(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cms/tours", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func TestAuthenticate(t *testing.T) {
	u := &model.User{ID: 7, Username: "admin", Email: "admin@localhost", Role: model.RoleAdmin}
	loader := &stubLoader{users: map[uint64]*model.User{7: u}}
	mw := Authenticate(testSecret, loader)

	t.Run("missing token", func(t *testing.T) {
		c, rec := authedRequest("")
		require.NoError(t, mw(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access token required")
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := utils.IssueToken(testSecret, u)
		require.NoError(t, err)
		c, rec := authedRequest(token[:len(token)-4] + "AAAA")
		require.NoError(t, mw(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("token for deleted user", func(t *testing.T) {
		gone := &model.User{ID: 99, Username: "ghost", Role: model.RoleEditor}
		token, err := utils.IssueToken(testSecret, gone)
		require.NoError(t, err)
		c, rec := authedRequest(token)
		require.NoError(t, mw(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found")
	})

	t.Run("valid token attaches current user", func(t *testing.T) {
		token, err := utils.IssueToken(testSecret, u)
		require.NoError(t, err)
		c, rec := authedRequest(token)
		require.NoError(t, mw(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, u, CurrentUser(c))
	})

	t.Run("role change takes effect without reissuing", func(t *testing.T) {
		// Token still claims admin, but storage says viewer now.
		token, err := utils.IssueToken(testSecret, u)
		require.NoError(t, err)
		demoted := *u
		demoted.Role = model.RoleViewer
		demotedLoader := &stubLoader{users: map[uint64]*model.User{7: &demoted}}

		c, rec := authedRequest(token)
		chain := Authenticate(testSecret, demotedLoader)(RequireRole(model.RoleAdmin)(okHandler))
		require.NoError(t, chain(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	run := func(u *model.User, roles ...model.Role) *httptest.ResponseRecorder {
		c, rec := authedRequest("")
		if u != nil {
			c.Set(CtxUser, u)
		}
		require.NoError(t, RequireRole(roles...)(okHandler)(c))
		return rec
	}

	t.Run("no user in context", func(t *testing.T) {
		rec := run(nil, model.RoleAdmin)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		rec := run(&model.User{Role: model.RoleEditor}, model.RoleAdmin)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "forbidden")
	})

	t.Run("allowed role", func(t *testing.T) {
		rec := run(&model.User{Role: model.RoleEditor}, model.RoleAdmin, model.RoleEditor)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
