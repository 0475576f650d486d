package ports

import (
	"context"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

type CreateProductInput struct {
	ProductName     string
	Cost            int
	AmountAvailable int
	SellerID        string
}

type UpdateProductInput struct {
	ProductName     string
	Cost            int
	AmountAvailable int
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Update and Delete operate on a product already resolved by the
	// ownership gate; authorization is not re-checked here.
	Update(ctx context.Context, product *domain.Product, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, product *domain.Product) error
}
