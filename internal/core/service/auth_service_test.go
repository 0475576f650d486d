package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, user.Username) {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, token, err := svc.Register(context.Background(), "alice", "pass123", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected user with id, got %+v", user)
	}
	if user.Deposit != 0 {
		t.Fatalf("expected zero deposit, got %d", user.Deposit)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token on register")
	}

	verified, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("register token failed verification: %v", err)
	}
	if verified.ID != user.ID {
		t.Fatalf("token subject %s, want %s", verified.ID, user.ID)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), "", "pass", domain.RoleBuyer); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob", "pass", "admin"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_DuplicateCaseInsensitive(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), "bob", "pass", domain.RoleSeller); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "BOB", "pass2", domain.RoleBuyer); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	created, _, err := svc.Register(context.Background(), "carol", "s3cret", domain.RoleSeller)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if sub, _ := claims.GetSubject(); sub != created.ID {
		t.Fatalf("token subject %q, want %q", sub, created.ID)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, _ = svc.Register(context.Background(), "dave", "goodpass", domain.RoleBuyer)
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, _, err := svc.Register(context.Background(), "erin", "pass", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"iat": time.Now().Add(-time.Hour).Unix(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(context.Background(), signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAuthService_Verify_WrongSecretAndGarbage(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, _, _ := svc.Register(context.Background(), "frank", "pass", domain.RoleBuyer)

	other := NewAuthService(repo, "other-secret", time.Hour)
	token, _, err := other.Login(context.Background(), user.Username, "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
	if _, err := svc.Verify(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestAuthService_Verify_UnknownSubject(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, token, err := svc.Register(context.Background(), "gone", "pass", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := svc.DeleteAccount(context.Background(), user); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestAuthService_UpdateAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, _, _ := svc.Register(context.Background(), "henry", "oldpass", domain.RoleSeller)
	_, _, _ = svc.Register(context.Background(), "iris", "pass", domain.RoleBuyer)

	updated, err := svc.UpdateAccount(context.Background(), user, "henry2", "newpass")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Username != "henry2" {
		t.Fatalf("username not updated: %s", updated.Username)
	}
	if updated.Role != domain.RoleSeller {
		t.Fatalf("role must stay immutable, got %s", updated.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("new password not stored: %v", err)
	}

	if _, err := svc.UpdateAccount(context.Background(), updated, "IRIS", "pw1234"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for taken username, got %v", err)
	}

	// Keeping your own username (any casing) is not a conflict.
	if _, err := svc.UpdateAccount(context.Background(), updated, "HENRY2", "pw1234"); err != nil {
		t.Fatalf("same-username update failed: %v", err)
	}
}
