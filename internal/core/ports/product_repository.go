package ports

import (
	"context"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

// ProductRepository defines the interface for catalog persistence.
// Name lookups are case-insensitive.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
