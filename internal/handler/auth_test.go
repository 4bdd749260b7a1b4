package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averose/luxe-travel-cms/internal/middleware"
	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/utils"
)

const testSecret = "handler-test-secret"

// stubUsers satisfies UserStore from a fixed user set keyed by username.
type stubUsers struct {
	byName map[string]*model.User
}

func (s *stubUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := s.byName[username]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func jsonRequest(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func seededAuthHandler(t *testing.T) (*AuthHandler, *model.User) {
	t.Helper()
	hash, err := utils.HashPassword("s3cret-pass", utils.MinBcryptCost)
	require.NoError(t, err)
	u := &model.User{
		ID:           1,
		Username:     "admin",
		Email:        "admin@localhost",
		Role:         model.RoleAdmin,
		PasswordHash: hash,
	}
	return NewAuthHandler(testSecret, &stubUsers{byName: map[string]*model.User{"admin": u}}), u
}

func TestLogin(t *testing.T) {
	h, u := seededAuthHandler(t)

	t.Run("success returns token and profile", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"s3cret-pass"}`)
		require.NoError(t, h.Login(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Token string `json:"token"`
			User  struct {
				ID       uint64 `json:"id"`
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, u.ID, resp.User.ID)
		assert.Equal(t, "admin", resp.User.Username)
		assert.Equal(t, "admin", resp.User.Role)

		claims := utils.VerifyToken(testSecret, resp.Token)
		require.NotNil(t, claims)
		assert.Equal(t, u.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"nope"}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("unknown username matches wrong-password response", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodPost, "/api/auth/login", `{"username":"nobody","password":"nope"}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("missing fields", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodPost, "/api/auth/login", `{}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "username")
		assert.Contains(t, rec.Body.String(), "password")
	})
}

func TestMe(t *testing.T) {
	h, u := seededAuthHandler(t)

	t.Run("with user in context", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodGet, "/api/auth/me", "")
		c.Set(middleware.CtxUser, u)
		require.NoError(t, h.Me(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"admin"`)
	})

	t.Run("without user", func(t *testing.T) {
		c, rec := jsonRequest(http.MethodGet, "/api/auth/me", "")
		require.NoError(t, h.Me(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
