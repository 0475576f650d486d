package ports

import (
	"context"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and returns it together with a freshly
	// issued session token, so a new user is logged in immediately.
	Register(ctx context.Context, username, password, role string) (*domain.User, string, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Verify decodes a session token and resolves its subject to a user.
	Verify(ctx context.Context, token string) (*domain.User, error)
	// UpdateAccount replaces username and password of an existing account.
	UpdateAccount(ctx context.Context, user *domain.User, username, password string) (*domain.User, error)
	// DeleteAccount removes the account. Products it owns are not cascaded.
	DeleteAccount(ctx context.Context, user *domain.User) error
}
