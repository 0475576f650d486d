package ports

import (
	"context"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

// Receipt is the result of a successful purchase. Change lists the coins
// returned, descending, summing to the pre-purchase deposit minus TotalSpent.
type Receipt struct {
	TotalSpent int            `json:"totalSpent"`
	Product    domain.Product `json:"product"`
	Change     []int          `json:"change"`
}

type VendingService interface {
	Deposit(ctx context.Context, userID string, coin int) (*domain.User, error)
	Reset(ctx context.Context, userID string) (*domain.User, error)
	Buy(ctx context.Context, userID, productID string, amount int) (*Receipt, error)
}
