package marketdata

import (
	"context"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Ticker drives the random-walk price simulation. Each tick, every
// stock's price moves by a uniform step of up to ±0.5% and the change
// percentage is recomputed against the seed price.
type Ticker struct {
	interval time.Duration
	quotes   *QuoteStore
	base     map[string]decimal.Decimal // seed prices, change is measured against these
}

// NewTicker creates a Ticker over the given quote store.
func NewTicker(interval time.Duration, quotes *QuoteStore) *Ticker {
	base := make(map[string]decimal.Decimal)
	for _, stock := range quotes.List() {
		base[stock.Symbol] = stock.CurrentPrice
	}
	return &Ticker{
		interval: interval,
		quotes:   quotes,
		base:     base,
	}
}

// Start runs the tick loop until the context is cancelled.
func (tk *Ticker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(tk.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tk.Tick()
			}
		}
	}()
}

// Tick applies one random-walk step to every quote.
func (tk *Ticker) Tick() {
	hundred := decimal.NewFromInt(100)
	floor := decimal.NewFromFloat(0.01)

	for _, stock := range tk.quotes.List() {
		// Uniform step in [-0.5%, +0.5%] of the current price.
		step := decimal.NewFromFloat((rand.Float64() - 0.5) * 0.01)
		price := stock.CurrentPrice.Mul(decimal.NewFromInt(1).Add(step)).Round(2)
		if price.LessThan(floor) {
			price = floor
		}

		base := tk.base[stock.Symbol]
		changePct := price.Sub(base).Div(base).Mul(hundred).Round(2)

		_ = tk.quotes.SetPrice(stock.Symbol, price, changePct)
	}
}
