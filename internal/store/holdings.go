package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
)

// HoldingsBook is a thread-safe in-memory store of positions, keyed
// by (account ID, symbol). A per-account symbol list preserves
// first-buy order so portfolio listings are stable.
type HoldingsBook struct {
	mu        sync.RWMutex
	positions map[int64]map[string]*domain.Position
	order     map[int64][]string // account ID → symbols in first-buy order
}

// NewHoldingsBook creates an empty HoldingsBook.
func NewHoldingsBook() *HoldingsBook {
	return &HoldingsBook{
		positions: make(map[int64]map[string]*domain.Position),
		order:     make(map[int64][]string),
	}
}

// Position returns a copy of the account's position in symbol, or
// false if no position exists.
func (b *HoldingsBook) Position(accountID int64, symbol string) (domain.Position, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.positions[accountID][symbol]
	if !ok {
		return domain.Position{}, false
	}
	return *p, true
}

// ApplyBuy adds quantity shares at execPrice to the account's
// position in symbol, creating the position on first buy. The average
// price becomes the weighted average of the old position and the new
// shares:
//
//	(oldQty*oldAvg + quantity*execPrice) / (oldQty+quantity)
func (b *HoldingsBook) ApplyBuy(accountID int64, symbol string, quantity int64, execPrice decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()

	book, ok := b.positions[accountID]
	if !ok {
		book = make(map[string]*domain.Position)
		b.positions[accountID] = book
	}

	p, ok := book[symbol]
	if !ok {
		book[symbol] = &domain.Position{
			Symbol:       symbol,
			Quantity:     quantity,
			AveragePrice: execPrice,
		}
		b.order[accountID] = append(b.order[accountID], symbol)
		return
	}

	oldCost := p.AveragePrice.Mul(decimal.NewFromInt(p.Quantity))
	newCost := execPrice.Mul(decimal.NewFromInt(quantity))
	newQty := p.Quantity + quantity

	p.AveragePrice = oldCost.Add(newCost).Div(decimal.NewFromInt(newQty))
	p.Quantity = newQty
}

// ApplySell removes quantity shares from the account's position in
// symbol. It returns domain.ErrInsufficientHoldings if no position
// exists or quantity exceeds the held amount, leaving the position
// unchanged. The average price is never touched by a sell; when the
// quantity reaches exactly zero the entry is removed.
func (b *HoldingsBook) ApplySell(accountID int64, symbol string, quantity int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.positions[accountID][symbol]
	if !ok || quantity > p.Quantity {
		return domain.ErrInsufficientHoldings
	}

	p.Quantity -= quantity
	if p.Quantity == 0 {
		delete(b.positions[accountID], symbol)
		b.removeFromOrder(accountID, symbol)
	}
	return nil
}

// Positions returns copies of the account's positions in first-buy
// order. Returns an empty slice for accounts with no holdings.
func (b *HoldingsBook) Positions(accountID int64) []domain.Position {
	b.mu.RLock()
	defer b.mu.RUnlock()

	symbols := b.order[accountID]
	result := make([]domain.Position, 0, len(symbols))
	for _, sym := range symbols {
		if p, ok := b.positions[accountID][sym]; ok {
			result = append(result, *p)
		}
	}
	return result
}

func (b *HoldingsBook) removeFromOrder(accountID int64, symbol string) {
	symbols := b.order[accountID]
	for i, sym := range symbols {
		if sym == symbol {
			b.order[accountID] = append(symbols[:i], symbols[i+1:]...)
			return
		}
	}
}
