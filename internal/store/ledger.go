package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
)

// Ledger is a thread-safe in-memory cash ledger, keyed by account ID.
//
// Debit checks and applies in one step under the ledger lock, so a
// balance is never observed negative. The trading engine additionally
// holds the per-account lock across a whole trade, which is what keeps
// a trade's funds check and its mutations atomic with respect to other
// trades on the same account.
type Ledger struct {
	mu       sync.RWMutex
	balances map[int64]decimal.Decimal
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[int64]decimal.Decimal),
	}
}

// Open creates the cash entry for an account. Called once, at
// registration.
func (l *Ledger) Open(accountID int64, startingBalance decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[accountID] = startingBalance
}

// Balance returns the account's cash balance. It returns
// domain.ErrAccountNotFound if no entry exists.
func (l *Ledger) Balance(accountID int64) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bal, ok := l.balances[accountID]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	return bal, nil
}

// Debit decreases the account's balance by amount. It returns
// domain.ErrInsufficientFunds if amount exceeds the balance, leaving
// the balance unchanged.
func (l *Ledger) Debit(accountID int64, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	bal, ok := l.balances[accountID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if amount.GreaterThan(bal) {
		return domain.ErrInsufficientFunds
	}
	l.balances[accountID] = bal.Sub(amount)
	return nil
}

// Credit increases the account's balance by amount.
func (l *Ledger) Credit(accountID int64, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	bal, ok := l.balances[accountID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	l.balances[accountID] = bal.Add(amount)
	return nil
}
