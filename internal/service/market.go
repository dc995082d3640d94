package service

import (
	"github.com/paperbroker/internal/domain"
	"github.com/paperbroker/internal/marketdata"
)

// MarketService serves quote, history, and depth queries. It never
// writes to the quote store; prices are moved only by the ticker.
type MarketService struct {
	quotes *marketdata.QuoteStore
}

// NewMarketService creates a MarketService over the given quote store.
func NewMarketService(quotes *marketdata.QuoteStore) *MarketService {
	return &MarketService{quotes: quotes}
}

// AllStocks returns every quote in listing order.
func (s *MarketService) AllStocks() []domain.Stock {
	return s.quotes.List()
}

// Quote returns the current quote for a symbol.
func (s *MarketService) Quote(symbol string) (domain.Stock, error) {
	return s.quotes.Get(symbol)
}

// History generates a daily price history for a symbol, walking from
// its current price. The timeframe is accepted for wire compatibility
// but does not change the generated window.
func (s *MarketService) History(symbol, timeframe string) ([]marketdata.PricePoint, error) {
	stock, err := s.quotes.Get(symbol)
	if err != nil {
		return nil, err
	}
	return marketdata.GenerateHistory(stock.CurrentPrice, marketdata.HistoryDays), nil
}

// Depth generates a synthetic order-book ladder around the symbol's
// current price.
func (s *MarketService) Depth(symbol string) (marketdata.Depth, error) {
	stock, err := s.quotes.Get(symbol)
	if err != nil {
		return marketdata.Depth{}, err
	}
	return marketdata.GenerateDepth(symbol, stock.CurrentPrice, 10), nil
}
