package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/ports"
)

// AuthHandler handles session login and logout.
type AuthHandler struct {
	authService ports.AuthService
	cookieName  string
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, cookieName string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieName: cookieName, tokenTTL: tokenTTL}
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      201   {object}  domain.User
// @Failure      400   {array}   fieldError
// @Failure      401   {array}   fieldError
// @Router       /login [put]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, []fieldError{{Value: "", Msg: "invalid payload", Param: ""}})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationFields(err))
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: req.Username, Msg: "Invalid credentials", Param: "username"},
				{Value: req.Password, Msg: "Invalid credentials", Param: "password"},
			})
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, []fieldError{
				{Value: req.Username, Msg: "Invalid credentials", Param: "password"},
			})
		}
		return err
	}

	c.SetCookie(sessionCookie(h.cookieName, token, h.tokenTTL))
	return c.JSON(http.StatusCreated, user)
}

// Logout clears the session cookie on the client.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Failure      401   {array}   fieldError
// @Failure      403   {array}   fieldError
// @Router       /logout [put]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(expiredCookie(h.cookieName))
	return c.NoContent(http.StatusNoContent)
}
