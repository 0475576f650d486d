package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/ports"
)

// fieldError is the error item shape shared by all gate responses.
type fieldError struct {
	Value string `json:"value"`
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// Authenticate validates the session cookie and injects the resolved user
// into context. A missing cookie is 401; a token that fails verification or
// whose subject no longer exists is 403.
func Authenticate(auth ports.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, []fieldError{
					{Value: "", Msg: "Invalid token", Param: cookieName},
				})
			}

			user, err := auth.Verify(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrUnknownSubject) {
					return c.JSON(http.StatusForbidden, []fieldError{
						{Value: "", Msg: "Invalid user id", Param: "sub"},
					})
				}
				if errors.Is(err, domain.ErrInvalidToken) {
					return c.JSON(http.StatusForbidden, []fieldError{
						{Value: cookie.Value, Msg: "Token expired", Param: cookieName},
					})
				}
				return err
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
