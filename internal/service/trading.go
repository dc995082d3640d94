package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
	"github.com/paperbroker/internal/marketdata"
	"github.com/paperbroker/internal/store"
)

// PortfolioView represents an account's cash balance and holdings.
type PortfolioView struct {
	UserID   int64
	Balance  decimal.Decimal
	Holdings []domain.Position
}

// TradingService executes buy and sell orders against the current
// quote and serves portfolio and trade feed queries. It is the only
// component that mutates the ledger and the holdings book.
type TradingService struct {
	accounts  *store.AccountStore
	ledger    *store.Ledger
	holdings  *store.HoldingsBook
	trades    *store.TradeLog
	quotes    *marketdata.QuoteStore
	feedLimit int
}

// NewTradingService creates a TradingService with the given
// dependencies. feedLimit caps the number of trades returned by Feed.
func NewTradingService(
	accounts *store.AccountStore,
	ledger *store.Ledger,
	holdings *store.HoldingsBook,
	trades *store.TradeLog,
	quotes *marketdata.QuoteStore,
	feedLimit int,
) *TradingService {
	return &TradingService{
		accounts:  accounts,
		ledger:    ledger,
		holdings:  holdings,
		trades:    trades,
		quotes:    quotes,
		feedLimit: feedLimit,
	}
}

// Buy purchases quantity shares of symbol at the current quote,
// debiting the account's cash.
func (s *TradingService) Buy(accountID int64, symbol string, quantity int64) error {
	return s.execute(domain.TradeSideBuy, accountID, symbol, quantity)
}

// Sell disposes of quantity shares of symbol at the current quote,
// crediting the proceeds to the account's cash.
func (s *TradingService) Sell(accountID int64, symbol string, quantity int64) error {
	return s.execute(domain.TradeSideSell, accountID, symbol, quantity)
}

// execute runs one trade. Preconditions are checked in order, short-
// circuiting on the first failure: positive quantity, account exists,
// symbol resolves, then funds (buy) or holdings (sell). A failed
// precondition leaves every store untouched.
//
// The quote is read exactly once and that snapshot prices both the
// validation and the execution. The account lock is held across the
// whole check-and-mutate sequence so two trades on the same account
// can never interleave — in particular, two concurrent buys cannot
// both pass the funds check against the same balance. Trades on
// different accounts proceed in parallel.
func (s *TradingService) execute(side domain.TradeSide, accountID int64, symbol string, quantity int64) error {
	if quantity <= 0 {
		return &domain.ValidationError{Message: "quantity must be a positive integer"}
	}

	acct, err := s.accounts.Get(accountID)
	if err != nil {
		return err
	}

	stock, err := s.quotes.Get(symbol)
	if err != nil {
		return err
	}

	acct.Mu.Lock()
	defer acct.Mu.Unlock()

	total := stock.CurrentPrice.Mul(decimal.NewFromInt(quantity))

	switch side {
	case domain.TradeSideBuy:
		// Debit checks and applies atomically; with the account lock
		// held this is the whole funds check.
		if err := s.ledger.Debit(accountID, total); err != nil {
			return err
		}
		s.holdings.ApplyBuy(accountID, symbol, quantity, stock.CurrentPrice)
	case domain.TradeSideSell:
		if err := s.holdings.ApplySell(accountID, symbol, quantity); err != nil {
			return err
		}
		if err := s.ledger.Credit(accountID, total); err != nil {
			return err
		}
	}

	s.trades.Append(&domain.Trade{
		TradeID:    uuid.New().String(),
		Side:       side,
		Symbol:     stock.Symbol,
		Quantity:   quantity,
		Price:      stock.CurrentPrice,
		ExecutedAt: time.Now(),
	})
	return nil
}

// Portfolio returns the account's balance and positions as one
// coherent snapshot. It returns domain.ErrPortfolioNotFound for
// unknown accounts.
func (s *TradingService) Portfolio(accountID int64) (*PortfolioView, error) {
	acct, err := s.accounts.Get(accountID)
	if err != nil {
		return nil, domain.ErrPortfolioNotFound
	}

	// Take the account lock so the balance and the holdings belong to
	// the same point between trades.
	acct.Mu.Lock()
	defer acct.Mu.Unlock()

	balance, err := s.ledger.Balance(accountID)
	if err != nil {
		return nil, domain.ErrPortfolioNotFound
	}

	return &PortfolioView{
		UserID:   accountID,
		Balance:  balance,
		Holdings: s.holdings.Positions(accountID),
	}, nil
}

// Feed returns the most recent trades across all accounts, newest
// first, capped at the configured feed limit.
func (s *TradingService) Feed() []*domain.Trade {
	return s.trades.Recent(s.feedLimit)
}
