package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/ports"
)

// ProductHandler handles catalog operations. Role and ownership checks are
// performed by the route's gates, not here.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create adds a product owned by the authenticated seller.
//
// @Summary      Create a product
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {array}   fieldError
// @Failure      403   {array}   fieldError
// @Router       /product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, []fieldError{{Value: "", Msg: "invalid payload", Param: ""}})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationFields(err))
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		ProductName:     req.ProductName,
		Cost:            req.Cost,
		AmountAvailable: req.AmountAvailable,
		SellerID:        user.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductExists):
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: req.ProductName, Msg: "ProductName already exist", Param: "productName"},
			})
		case errors.Is(err, domain.ErrInvalidCost):
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: "", Msg: "Cost must be a multiple of 5", Param: "cost"},
			})
		}
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// Get returns a product by id. Public, no gates.
//
// @Summary      Read a product
// @Tags         product
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      400  {array}   fieldError
// @Router       /product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id := c.Param("id")
	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: id, Msg: "Invalid product id", Param: "id"},
			})
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update field-copies the payload onto the product resolved by the ownership
// gate.
//
// @Summary      Update a product
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "New product fields"
// @Success      200   {object}  domain.Product
// @Failure      400   {array}   fieldError
// @Failure      403   {array}   fieldError
// @Router       /product/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	product, err := ctxProduct(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, []fieldError{{Value: "", Msg: "invalid payload", Param: ""}})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationFields(err))
	}

	updated, err := h.service.Update(c.Request().Context(), product, ports.UpdateProductInput{
		ProductName:     req.ProductName,
		Cost:            req.Cost,
		AmountAvailable: req.AmountAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductExists):
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: req.ProductName, Msg: "ProductName already exist", Param: "productName"},
			})
		case errors.Is(err, domain.ErrInvalidCost):
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: "", Msg: "Cost must be a multiple of 5", Param: "cost"},
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete removes the product resolved by the ownership gate.
//
// @Summary      Delete a product
// @Tags         product
// @Param        id   path   string  true  "Product id"
// @Success      204
// @Failure      400  {array}  fieldError
// @Failure      403  {array}  fieldError
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	product, err := ctxProduct(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), product); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
