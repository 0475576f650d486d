package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

func TestUserRepository_CaseInsensitiveLookupAndUniqueness(t *testing.T) {
	repo := NewUserRepository()

	if _, err := repo.Create(context.Background(), &domain.User{ID: "u1", Username: "Alice", Role: domain.RoleBuyer}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByUsername(context.Background(), "aLiCe")
	if err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	if found.ID != "u1" {
		t.Fatalf("found wrong user: %+v", found)
	}

	if _, err := repo.Create(context.Background(), &domain.User{ID: "u2", Username: "ALICE", Role: domain.RoleSeller}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_ReadsReturnCopies(t *testing.T) {
	repo := NewUserRepository()

	_, _ = repo.Create(context.Background(), &domain.User{ID: "u1", Username: "alice", Deposit: 10})

	read, _ := repo.FindByID(context.Background(), "u1")
	read.Deposit = 999

	stored, _ := repo.FindByID(context.Background(), "u1")
	if stored.Deposit != 10 {
		t.Fatalf("mutating a read leaked into the store: %d", stored.Deposit)
	}
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	repo := NewUserRepository()

	if _, err := repo.Update(context.Background(), &domain.User{ID: "ghost"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on update, got %v", err)
	}

	_, _ = repo.Create(context.Background(), &domain.User{ID: "u1", Username: "alice"})

	updated, err := repo.Update(context.Background(), &domain.User{ID: "u1", Username: "alice", Deposit: 50})
	if err != nil || updated.Deposit != 50 {
		t.Fatalf("update failed: %v %+v", err, updated)
	}

	if err := repo.Delete(context.Background(), "u1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(context.Background(), "u1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
