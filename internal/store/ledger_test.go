package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
)

func TestLedger_OpenAndBalance(t *testing.T) {
	l := NewLedger()
	l.Open(1, decimal.NewFromInt(100000))

	bal, err := l.Balance(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bal.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("Balance = %s, want 100000", bal)
	}
}

func TestLedger_Balance_UnknownAccount(t *testing.T) {
	l := NewLedger()

	_, err := l.Balance(42)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("got %v, want ErrAccountNotFound", err)
	}
}

func TestLedger_Debit(t *testing.T) {
	l := NewLedger()
	l.Open(1, decimal.NewFromInt(1000))

	if err := l.Debit(1, decimal.NewFromFloat(250.50)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bal, _ := l.Balance(1)
	if !bal.Equal(decimal.NewFromFloat(749.50)) {
		t.Errorf("Balance = %s, want 749.5", bal)
	}
}

func TestLedger_Debit_InsufficientFunds(t *testing.T) {
	l := NewLedger()
	l.Open(1, decimal.NewFromInt(100))

	err := l.Debit(1, decimal.NewFromFloat(100.01))
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}

	// Failed debit must leave the balance unchanged.
	bal, _ := l.Balance(1)
	if !bal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Balance = %s, want 100", bal)
	}
}

func TestLedger_Debit_ExactBalance(t *testing.T) {
	l := NewLedger()
	l.Open(1, decimal.NewFromInt(100))

	if err := l.Debit(1, decimal.NewFromInt(100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bal, _ := l.Balance(1)
	if !bal.Equal(decimal.Zero) {
		t.Errorf("Balance = %s, want 0", bal)
	}
}

func TestLedger_Credit(t *testing.T) {
	l := NewLedger()
	l.Open(1, decimal.NewFromInt(100))

	if err := l.Credit(1, decimal.NewFromFloat(49.99)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bal, _ := l.Balance(1)
	if !bal.Equal(decimal.NewFromFloat(149.99)) {
		t.Errorf("Balance = %s, want 149.99", bal)
	}
}

func TestLedger_Credit_UnknownAccount(t *testing.T) {
	l := NewLedger()

	err := l.Credit(7, decimal.NewFromInt(1))
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("got %v, want ErrAccountNotFound", err)
	}
}
