package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/ports"
)

// RequireOwnership resolves the product named by the :id path parameter and
// checks it belongs to the authenticated user. Both an unknown id and a
// foreign product answer 400, matching the original wire behavior. On success
// the resolved product is injected into context for the handler.
// Must run after Authenticate.
func RequireOwnership(products ports.ProductService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get("user").(*domain.User)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, []fieldError{
					{Value: "", Msg: "Invalid user", Param: "sub"},
				})
			}

			id := c.Param("id")
			product, err := products.Get(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrProductNotFound) {
					return c.JSON(http.StatusBadRequest, []fieldError{
						{Value: id, Msg: "Invalid product id", Param: "id"},
					})
				}
				return err
			}

			if product.SellerID != user.ID {
				return c.JSON(http.StatusBadRequest, []fieldError{
					{Value: id, Msg: "Product not owned by user", Param: "id"},
				})
			}

			c.Set("product", product)
			return next(c)
		}
	}
}
