package service

import (
	"errors"
	"testing"

	"github.com/paperbroker/internal/domain"
	"github.com/paperbroker/internal/marketdata"
)

func TestMarketService_AllStocks(t *testing.T) {
	svc := NewMarketService(marketdata.NewQuoteStore(marketdata.DefaultStocks()))

	stocks := svc.AllStocks()
	if len(stocks) != 5 {
		t.Fatalf("got %d stocks, want 5", len(stocks))
	}
	if stocks[0].Symbol != "RELIANCE" {
		t.Errorf("first symbol = %q, want RELIANCE", stocks[0].Symbol)
	}
}

func TestMarketService_Quote_Unknown(t *testing.T) {
	svc := NewMarketService(marketdata.NewQuoteStore(marketdata.DefaultStocks()))

	_, err := svc.Quote("FAKE")
	if !errors.Is(err, domain.ErrStockNotFound) {
		t.Errorf("got %v, want ErrStockNotFound", err)
	}
}

func TestMarketService_History(t *testing.T) {
	svc := NewMarketService(marketdata.NewQuoteStore(marketdata.DefaultStocks()))

	points, err := svc.History("INFY", "1M")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != marketdata.HistoryDays {
		t.Errorf("got %d points, want %d", len(points), marketdata.HistoryDays)
	}

	if _, err := svc.History("FAKE", "1M"); !errors.Is(err, domain.ErrStockNotFound) {
		t.Errorf("got %v, want ErrStockNotFound", err)
	}
}

func TestMarketService_Depth(t *testing.T) {
	svc := NewMarketService(marketdata.NewQuoteStore(marketdata.DefaultStocks()))

	depth, err := svc.Depth("TCS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if depth.Symbol != "TCS" {
		t.Errorf("Symbol = %q, want TCS", depth.Symbol)
	}
	if len(depth.Bids) != 10 || len(depth.Asks) != 10 {
		t.Errorf("got %d bids / %d asks, want 10 / 10", len(depth.Bids), len(depth.Asks))
	}
}
