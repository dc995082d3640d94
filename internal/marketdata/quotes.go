package marketdata

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
)

// QuoteStore holds the current quote for every tradable instrument,
// keyed by symbol, with a seed-order list for stable listing.
//
// Get returns a value copy taken under the read lock: a trade prices
// against exactly one coherent snapshot even while the ticker is
// updating, and never a torn value.
type QuoteStore struct {
	mu     sync.RWMutex
	stocks map[string]*domain.Stock
	order  []string // seed order
}

// NewQuoteStore creates a QuoteStore seeded with the given stocks.
func NewQuoteStore(seed []domain.Stock) *QuoteStore {
	s := &QuoteStore{
		stocks: make(map[string]*domain.Stock, len(seed)),
		order:  make([]string, 0, len(seed)),
	}
	for i := range seed {
		stock := seed[i]
		s.stocks[stock.Symbol] = &stock
		s.order = append(s.order, stock.Symbol)
	}
	return s
}

// Get returns a snapshot of the stock's current quote. It returns
// domain.ErrStockNotFound for unknown symbols.
func (s *QuoteStore) Get(symbol string) (domain.Stock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stock, ok := s.stocks[symbol]
	if !ok {
		return domain.Stock{}, domain.ErrStockNotFound
	}
	return *stock, nil
}

// List returns snapshots of all quotes in seed order.
func (s *QuoteStore) List() []domain.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Stock, 0, len(s.order))
	for _, sym := range s.order {
		result = append(result, *s.stocks[sym])
	}
	return result
}

// SetPrice updates a stock's current price and change percentage.
// Used only by the price ticker.
func (s *QuoteStore) SetPrice(symbol string, price, changePct decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stock, ok := s.stocks[symbol]
	if !ok {
		return domain.ErrStockNotFound
	}
	stock.CurrentPrice = price
	stock.ChangePercentage = changePct
	return nil
}

// DefaultStocks returns the seed instrument list.
func DefaultStocks() []domain.Stock {
	return []domain.Stock{
		{Symbol: "RELIANCE", Name: "Reliance Industries", CurrentPrice: decimal.NewFromFloat(2450.00), ChangePercentage: decimal.NewFromFloat(1.5), Type: "EQUITY"},
		{Symbol: "TCS", Name: "Tata Consultancy Services", CurrentPrice: decimal.NewFromFloat(3500.00), ChangePercentage: decimal.NewFromFloat(-0.8), Type: "EQUITY"},
		{Symbol: "INFY", Name: "Infosys", CurrentPrice: decimal.NewFromFloat(1600.00), ChangePercentage: decimal.NewFromFloat(0.5), Type: "EQUITY"},
		{Symbol: "HDFCBANK", Name: "HDFC Bank", CurrentPrice: decimal.NewFromFloat(1650.00), ChangePercentage: decimal.NewFromFloat(1.2), Type: "EQUITY"},
		{Symbol: "ICICIBANK", Name: "ICICI Bank", CurrentPrice: decimal.NewFromFloat(950.00), ChangePercentage: decimal.NewFromFloat(-0.3), Type: "EQUITY"},
	}
}
