package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/middleware"
	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/utils"
	"github.com/averose/luxe-travel-cms/internal/validate"
)

// UserStore is the slice of the user repository the auth handler needs.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Secret string
	Users  UserStore
}

func NewAuthHandler(secret string, users UserStore) *AuthHandler {
	return &AuthHandler{Secret: secret, Users: users}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type loginResp struct {
	Token string   `json:"token"`
	User  userPart `json:"user"`
}

// Login verifies credentials and returns a 7-day bearer token plus the
// user profile the admin client caches. Unknown username and wrong
// password produce the same 401 so the endpoint does not leak which
// usernames exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if errs := validate.Login(req.Username, req.Password); !errs.OK() {
		return validationFailed(c, errs)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return repoError(c, err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := utils.IssueToken(h.Secret, u)
	if err != nil {
		c.Logger().Errorf("issue token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Token: token,
		User:  userPart{ID: u.ID, Username: u.Username, Email: u.Email, Role: string(u.Role)},
	})
}

// Me returns the authenticated user's profile. Useful for the admin
// client to re-validate its cached copy after a reload.
func (h *AuthHandler) Me(c echo.Context) error {
	u := middleware.CurrentUser(c)
	if u == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Access token required"})
	}
	return c.JSON(http.StatusOK, userPart{ID: u.ID, Username: u.Username, Email: u.Email, Role: string(u.Role)})
}
