package domain

import "github.com/shopspring/decimal"

// Stock represents a tradable instrument with its current quote.
// CurrentPrice and ChangePercentage are mutated only by the market
// data ticker; the quote store hands out value copies so readers
// always see one coherent quote.
type Stock struct {
	Symbol           string
	Name             string
	CurrentPrice     decimal.Decimal
	ChangePercentage decimal.Decimal
	Type             string
}
