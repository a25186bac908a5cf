package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoutbase/shoutbase/pkg/models"
)

const userContextKey = "auth.user"

// Middleware validates the bearer token and attaches the user to the
// request context. Requests without a valid session get 401.
func Middleware(ts *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Authorization header required",
				})
			}

			user, err := ts.ValidateAccessToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Invalid or expired session",
				})
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user attached by Middleware, or nil
// on unauthenticated routes.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}
