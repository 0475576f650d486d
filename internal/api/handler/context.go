package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

// ctxUser extracts the user injected by the Authenticate gate. Its absence on
// a protected route means the gate did not run, which is a server-side wiring
// fault, not a client error.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "missing authenticated user")
	}
	return user, nil
}

// ctxProduct extracts the product resolved by the ownership gate.
func ctxProduct(c echo.Context) (*domain.Product, error) {
	product, _ := c.Get("product").(*domain.Product)
	if product == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "missing resolved product")
	}
	return product, nil
}
