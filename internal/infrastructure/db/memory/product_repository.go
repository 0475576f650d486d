package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

// ProductRepository is a process-local catalog store with the same copy
// semantics as UserRepository.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]*domain.Product)}
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(product), nil
}

func (r *ProductRepository) FindByName(_ context.Context, name string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.products {
		if strings.EqualFold(product.ProductName, name) {
			return cloneProduct(product), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if strings.EqualFold(existing.ProductName, product.ProductName) {
			return nil, domain.ErrProductExists
		}
	}

	r.products[product.ID] = cloneProduct(product)
	return cloneProduct(product), nil
}

func (r *ProductRepository) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}

	r.products[product.ID] = cloneProduct(product)
	return cloneProduct(product), nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	return &clone
}
