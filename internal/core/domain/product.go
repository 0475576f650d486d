package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrProductExists = errors.New("product name already exist")
var ErrNotOwner = errors.New("product not owned by user")
var ErrInvalidCost = errors.New("cost must be a positive multiple of 5")
var ErrInvalidAmount = errors.New("amount must be at least 1")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrInsufficientDeposit = errors.New("insufficient deposit")

// Product is an item offered by a seller. SellerID references the creating
// user and never changes.
type Product struct {
	ID              string `json:"id"`
	ProductName     string `json:"productName"`
	Cost            int    `json:"cost"`
	AmountAvailable int    `json:"amountAvailable"`
	SellerID        string `json:"sellerId"`
}
