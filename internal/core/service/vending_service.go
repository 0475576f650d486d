package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/ports"
)

// VendingService implements the transactional engine: deposit, reset, buy.
// A single mutex serializes every mutation so concurrent requests cannot
// oversell stock or lose deposit updates across the user and product stores.
type VendingService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	logger   zerolog.Logger

	mu sync.Mutex
}

func NewVendingService(users ports.UserRepository, products ports.ProductRepository, logger zerolog.Logger) *VendingService {
	return &VendingService{users: users, products: products, logger: logger}
}

// Deposit adds a single coin to the user's balance. Only the accepted
// denominations are allowed, keeping the balance a sum of coin values.
func (s *VendingService) Deposit(ctx context.Context, userID string, coin int) (*domain.User, error) {
	if !domain.ValidCoin(coin) {
		return nil, domain.ErrInvalidCoin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}

	user.Deposit += coin
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Int("coin", coin).
		Int("deposit", updated.Deposit).
		Msg("coin deposited")

	return updated, nil
}

// Reset zeroes the user's balance unconditionally.
func (s *VendingService) Reset(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}

	user.Deposit = 0
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}

	s.logger.Info().Str("user_id", userID).Msg("deposit reset")

	return updated, nil
}

// Buy purchases amount units of a product. All checks run against the
// pre-transaction state; a failed purchase leaves user and product untouched.
func (s *VendingService) Buy(ctx context.Context, userID, productID string, amount int) (*ports.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. Resolve the product.
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("buy: %w", err)
	}

	// 2. At least one unit must be requested.
	if amount < 1 {
		return nil, domain.ErrInvalidAmount
	}

	// 3. Enough stock for the whole request.
	if product.AmountAvailable < amount {
		return nil, domain.ErrInsufficientStock
	}

	// 4. Enough deposit for the whole request, checked before any mutation.
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buy: %w", err)
	}
	totalCost := product.Cost * amount
	if totalCost > user.Deposit {
		return nil, domain.ErrInsufficientDeposit
	}

	// 5. Commit: stock down by amount, balance zeroed, change computed by
	// greedy descending denominations.
	product.AmountAvailable -= amount
	if _, err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("buy: update product: %w", err)
	}

	remaining := user.Deposit - totalCost
	user.Deposit = 0
	if _, err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("buy: update user: %w", err)
	}

	change := domain.MakeChange(remaining)

	s.logger.Info().
		Str("user_id", userID).
		Str("product_id", product.ID).
		Int("amount", amount).
		Int("total_spent", totalCost).
		Ints("change", change).
		Msg("purchase completed")

	return &ports.Receipt{
		TotalSpent: totalCost,
		Product:    *product,
		Change:     change,
	}, nil
}
