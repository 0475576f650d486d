package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/api/metrics"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/ports"
)

// VendingHandler handles deposit, buy, and reset for buyer accounts.
type VendingHandler struct {
	service ports.VendingService
}

func NewVendingHandler(service ports.VendingService) *VendingHandler {
	return &VendingHandler{service: service}
}

// Deposit adds one coin to the authenticated buyer's balance.
//
// @Summary      Deposit a coin
// @Tags         vending
// @Produce      json
// @Param        coins  path      int  true  "Coin value (5, 10, 20, 50, 100)"
// @Success      200    {object}  domain.User
// @Failure      400    {array}   fieldError
// @Failure      403    {array}   fieldError
// @Router       /deposit/{coins} [put]
func (h *VendingHandler) Deposit(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	raw := c.Param("coins")
	coin, err := strconv.Atoi(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, []fieldError{
			{Value: raw, Msg: "Invalid coin value", Param: "coins"},
		})
	}

	updated, err := h.service.Deposit(c.Request().Context(), user.ID, coin)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCoin) {
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: raw, Msg: "Invalid coin value", Param: "coins"},
			})
		}
		return err
	}

	metrics.CoinsDepositedTotal.WithLabelValues(raw).Inc()

	return c.JSON(http.StatusOK, updated)
}

// Buy purchases an amount of a product and returns the receipt with change.
//
// @Summary      Buy a product
// @Tags         vending
// @Produce      json
// @Param        id      path      string  true  "Product id"
// @Param        amount  path      int     true  "Units to buy"
// @Success      200     {object}  ports.Receipt
// @Failure      400     {array}   fieldError
// @Failure      403     {array}   fieldError
// @Router       /buy/{id}/{amount} [put]
func (h *VendingHandler) Buy(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	productID := c.Param("id")
	rawAmount := c.Param("amount")
	amount, err := strconv.Atoi(rawAmount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, []fieldError{
			{Value: rawAmount, Msg: "Invalid amount", Param: "amount"},
		})
	}

	receipt, err := h.service.Buy(c.Request().Context(), user.ID, productID, amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: productID, Msg: "Invalid product id", Param: "id"},
			})
		case errors.Is(err, domain.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: rawAmount, Msg: "Amount must be at least 1", Param: "amount"},
			})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: rawAmount, Msg: "Insufficient stock", Param: "amount"},
			})
		case errors.Is(err, domain.ErrInsufficientDeposit):
			return c.JSON(http.StatusBadRequest, []fieldError{
				{Value: rawAmount, Msg: "Insufficient deposit", Param: "amount"},
			})
		}
		return err
	}

	metrics.PurchasesTotal.Inc()
	metrics.UnitsSoldTotal.Add(float64(amount))
	for _, coin := range receipt.Change {
		metrics.ChangeCoinsReturnedTotal.WithLabelValues(strconv.Itoa(coin)).Inc()
	}

	return c.JSON(http.StatusOK, receipt)
}

// Reset zeroes the authenticated buyer's balance.
//
// @Summary      Reset the deposit
// @Tags         vending
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      403  {array}   fieldError
// @Router       /reset [put]
func (h *VendingHandler) Reset(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Reset(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	metrics.DepositResetsTotal.Inc()

	return c.JSON(http.StatusOK, updated)
}
