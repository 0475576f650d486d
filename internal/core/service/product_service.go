package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// Create adds a product to the catalog owned by the given seller.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if err := validCost(input.Cost); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:              uuid.NewString(),
		ProductName:     input.ProductName,
		Cost:            input.Cost,
		AmountAvailable: input.AmountAvailable,
		SellerID:        input.SellerID,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", created.ID).
		Str("seller_id", created.SellerID).
		Msg("product created")

	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Update field-copies name, cost, and stock onto an already resolved product.
// SellerID never changes.
func (s *ProductService) Update(ctx context.Context, product *domain.Product, input ports.UpdateProductInput) (*domain.Product, error) {
	if err := validCost(input.Cost); err != nil {
		return nil, err
	}

	if !strings.EqualFold(input.ProductName, product.ProductName) {
		if _, err := s.repo.FindByName(ctx, input.ProductName); err == nil {
			return nil, domain.ErrProductExists
		} else if !errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
	}

	updated := *product
	updated.ProductName = input.ProductName
	updated.Cost = input.Cost
	updated.AmountAvailable = input.AmountAvailable
	return s.repo.Update(ctx, &updated)
}

func (s *ProductService) Delete(ctx context.Context, product *domain.Product) error {
	if err := s.repo.Delete(ctx, product.ID); err != nil {
		return err
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("seller_id", product.SellerID).
		Msg("product deleted")

	return nil
}

func validCost(cost int) error {
	if cost <= 0 || cost%5 != 0 {
		return domain.ErrInvalidCost
	}
	return nil
}
