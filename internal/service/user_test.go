package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
	"github.com/paperbroker/internal/store"
)

func newTestUserService() *UserService {
	return NewUserService(store.NewAccountStore(), store.NewLedger(), decimal.NewFromInt(100000))
}

func TestUserService_Register(t *testing.T) {
	svc := newTestUserService()

	view, err := svc.Register("alice", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Account.Username != "alice" {
		t.Errorf("Username = %q, want %q", view.Account.Username, "alice")
	}
	if !view.Balance.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("Balance = %s, want 100000", view.Balance)
	}
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc := newTestUserService()

	for _, tc := range []struct{ username, password string }{
		{"", "secret"},
		{"alice", ""},
		{"", ""},
	} {
		var validationErr *domain.ValidationError
		_, err := svc.Register(tc.username, tc.password)
		if !errors.As(err, &validationErr) {
			t.Errorf("Register(%q, %q): got %v, want ValidationError", tc.username, tc.password, err)
		}
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc := newTestUserService()
	if _, err := svc.Register("alice", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register("alice", "other")
	if !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Errorf("got %v, want ErrUserAlreadyExists", err)
	}
}

func TestUserService_GetByUsername(t *testing.T) {
	svc := newTestUserService()
	svc.Register("alice", "secret")

	view, err := svc.GetByUsername("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Account.ID != 1 {
		t.Errorf("ID = %d, want 1", view.Account.ID)
	}

	if _, err := svc.GetByUsername("mallory"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestUserService_List(t *testing.T) {
	svc := newTestUserService()
	svc.Register("alice", "a")
	svc.Register("bob", "b")

	views := svc.List()
	if len(views) != 2 {
		t.Fatalf("got %d users, want 2", len(views))
	}
	if views[0].Account.Username != "alice" || views[1].Account.Username != "bob" {
		t.Errorf("unexpected order: %q, %q", views[0].Account.Username, views[1].Account.Username)
	}
}
