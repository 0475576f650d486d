package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

// RequireRole enforces that the authenticated user holds the given role.
// Must run after Authenticate.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get("user").(*domain.User)
			if user == nil || user.Role != role {
				return c.JSON(http.StatusForbidden, []fieldError{
					{Value: "", Msg: "Operation requires the " + role + " role", Param: "role"},
				})
			}
			return next(c)
		}
	}
}
