package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/utils"
)

// UserLoader fetches the current user record for a verified token. It is
// satisfied by *repository.UserRepo; tests supply a stub.
type UserLoader interface {
	GetByID(ctx context.Context, id uint64) (*model.User, error)
}

// Context keys set by Authenticate for downstream handlers.
const (
	CtxUser   = "user"    // *model.User
	CtxUserID = "user_id" // uint64
)

// Authenticate returns an Echo middleware that validates a Bearer access
// token and attaches the authenticated user to the request context.
//
// The per-request chain is: missing token -> 401; bad signature or expiry
// -> 403; token fine but the user no longer exists -> 403. On success the
// full current user record is loaded from storage rather than trusted from
// the claims, so a role or email change takes effect immediately instead
// of waiting out the token's 7-day lifetime.
func Authenticate(secret string, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Access token required"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims := utils.VerifyToken(secret, raw)
			if claims == nil {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Invalid or expired token"})
			}

			u, err := users.GetByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return c.JSON(http.StatusForbidden, echo.Map{"error": "User not found"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load user"})
			}

			c.Set(CtxUser, u)
			c.Set(CtxUserID, u.ID)
			return next(c)
		}
	}
}

// RequireRole returns a middleware enforcing that the authenticated user
// holds one of the given roles. It must run after Authenticate: a missing
// user in context yields 401, a present user with the wrong role 403.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := c.Get(CtxUser).(*model.User)
			if !ok || u == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Access token required"})
			}
			if !allowed[u.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user attached by Authenticate, or nil.
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(CtxUser).(*model.User)
	return u
}
