package ports

import (
	"context"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Username lookups are case-insensitive.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
