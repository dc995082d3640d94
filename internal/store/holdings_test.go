package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
)

func TestHoldingsBook_ApplyBuy_NewPosition(t *testing.T) {
	b := NewHoldingsBook()
	b.ApplyBuy(1, "RELIANCE", 10, decimal.NewFromFloat(2450.00))

	p, ok := b.Position(1, "RELIANCE")
	if !ok {
		t.Fatal("expected position to exist")
	}
	if p.Quantity != 10 {
		t.Errorf("Quantity = %d, want 10", p.Quantity)
	}
	if !p.AveragePrice.Equal(decimal.NewFromFloat(2450.00)) {
		t.Errorf("AveragePrice = %s, want 2450", p.AveragePrice)
	}
}

func TestHoldingsBook_ApplyBuy_WeightedAverage(t *testing.T) {
	b := NewHoldingsBook()
	b.ApplyBuy(1, "INFY", 10, decimal.NewFromInt(1600))
	b.ApplyBuy(1, "INFY", 30, decimal.NewFromInt(1680))

	p, ok := b.Position(1, "INFY")
	if !ok {
		t.Fatal("expected position to exist")
	}
	if p.Quantity != 40 {
		t.Errorf("Quantity = %d, want 40", p.Quantity)
	}
	// (10*1600 + 30*1680) / 40 = 1660
	if !p.AveragePrice.Equal(decimal.NewFromInt(1660)) {
		t.Errorf("AveragePrice = %s, want 1660", p.AveragePrice)
	}
}

func TestHoldingsBook_ApplySell_LeavesAveragePrice(t *testing.T) {
	b := NewHoldingsBook()
	b.ApplyBuy(1, "TCS", 5, decimal.NewFromInt(3450))

	if err := b.ApplySell(1, "TCS", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, ok := b.Position(1, "TCS")
	if !ok {
		t.Fatal("expected position to exist")
	}
	if p.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", p.Quantity)
	}
	if !p.AveragePrice.Equal(decimal.NewFromInt(3450)) {
		t.Errorf("AveragePrice = %s, want 3450 (sells must not change it)", p.AveragePrice)
	}
}

func TestHoldingsBook_ApplySell_RemovesAtZero(t *testing.T) {
	b := NewHoldingsBook()
	b.ApplyBuy(1, "TCS", 5, decimal.NewFromInt(3450))

	if err := b.ApplySell(1, "TCS", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := b.Position(1, "TCS"); ok {
		t.Error("expected position to be removed at quantity zero")
	}
	if got := len(b.Positions(1)); got != 0 {
		t.Errorf("Positions = %d entries, want 0", got)
	}
}

func TestHoldingsBook_ApplySell_InsufficientHoldings(t *testing.T) {
	b := NewHoldingsBook()
	b.ApplyBuy(1, "TCS", 5, decimal.NewFromInt(3450))

	err := b.ApplySell(1, "TCS", 6)
	if !errors.Is(err, domain.ErrInsufficientHoldings) {
		t.Fatalf("got %v, want ErrInsufficientHoldings", err)
	}

	// Failed sell must leave the position unchanged.
	p, _ := b.Position(1, "TCS")
	if p.Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", p.Quantity)
	}
}

func TestHoldingsBook_ApplySell_NoPosition(t *testing.T) {
	b := NewHoldingsBook()

	err := b.ApplySell(1, "RELIANCE", 1)
	if !errors.Is(err, domain.ErrInsufficientHoldings) {
		t.Errorf("got %v, want ErrInsufficientHoldings", err)
	}
}

func TestHoldingsBook_Positions_FirstBuyOrder(t *testing.T) {
	b := NewHoldingsBook()
	b.ApplyBuy(1, "TCS", 1, decimal.NewFromInt(3500))
	b.ApplyBuy(1, "RELIANCE", 1, decimal.NewFromInt(2450))
	b.ApplyBuy(1, "INFY", 1, decimal.NewFromInt(1600))
	// A later buy of an existing symbol must not move it.
	b.ApplyBuy(1, "TCS", 1, decimal.NewFromInt(3500))

	positions := b.Positions(1)
	want := []string{"TCS", "RELIANCE", "INFY"}
	if len(positions) != len(want) {
		t.Fatalf("got %d positions, want %d", len(positions), len(want))
	}
	for i, sym := range want {
		if positions[i].Symbol != sym {
			t.Errorf("positions[%d].Symbol = %q, want %q", i, positions[i].Symbol, sym)
		}
	}
}

func TestHoldingsBook_AccountsAreIndependent(t *testing.T) {
	b := NewHoldingsBook()
	b.ApplyBuy(1, "TCS", 5, decimal.NewFromInt(3450))

	if _, ok := b.Position(2, "TCS"); ok {
		t.Error("account 2 should have no position")
	}
	if err := b.ApplySell(2, "TCS", 1); !errors.Is(err, domain.ErrInsufficientHoldings) {
		t.Errorf("got %v, want ErrInsufficientHoldings", err)
	}
}
