package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/api/metrics"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/ports"
)

// UserHandler handles account registration and self-service operations.
type UserHandler struct {
	authService ports.AuthService
	cookieName  string
	tokenTTL    time.Duration
}

func NewUserHandler(authService ports.AuthService, cookieName string, tokenTTL time.Duration) *UserHandler {
	return &UserHandler{authService: authService, cookieName: cookieName, tokenTTL: tokenTTL}
}

// Register creates a new account and logs it in via the session cookie.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {array}   fieldError
// @Router       /user [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, []fieldError{{Value: "", Msg: "invalid payload", Param: ""}})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationFields(err))
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: req.Username, Msg: "Username already exist", Param: "username"},
			})
		}
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(user.Role).Inc()

	c.SetCookie(sessionCookie(h.cookieName, token, h.tokenTTL))
	return c.JSON(http.StatusCreated, user)
}

// Read returns the authenticated user.
//
// @Summary      Read own account
// @Tags         user
// @Produce      json
// @Success      200   {object}  domain.User
// @Failure      401   {array}   fieldError
// @Failure      403   {array}   fieldError
// @Router       /user [get]
func (h *UserHandler) Read(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update replaces username and password of the authenticated user.
//
// @Summary      Update own account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "New credentials"
// @Success      200   {object}  domain.User
// @Failure      400   {array}   fieldError
// @Router       /user [put]
func (h *UserHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, []fieldError{{Value: "", Msg: "invalid payload", Param: ""}})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationFields(err))
	}

	updated, err := h.authService.UpdateAccount(c.Request().Context(), user, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: req.Username, Msg: "Username already exist", Param: "username"},
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete removes the authenticated user's account.
//
// @Summary      Delete own account
// @Tags         user
// @Success      204
// @Failure      401   {array}   fieldError
// @Failure      403   {array}   fieldError
// @Router       /user [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.authService.DeleteAccount(c.Request().Context(), user); err != nil {
		return err
	}

	c.SetCookie(expiredCookie(h.cookieName))
	return c.NoContent(http.StatusNoContent)
}
