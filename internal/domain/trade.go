package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeSide indicates whether a trade was a buy or a sell.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "BUY"
	TradeSideSell TradeSide = "SELL"
)

// Trade represents one executed buy or sell. Trades are immutable
// facts: appended to the trade log on execution, never updated or
// deleted.
type Trade struct {
	TradeID    string
	Side       TradeSide
	Symbol     string
	Quantity   int64
	Price      decimal.Decimal // execution price, the quote snapshot used for the fill
	ExecutedAt time.Time
}
