package domain

import "github.com/shopspring/decimal"

// Position represents an account's holding in a single symbol.
//
// Quantity is strictly positive for as long as the position exists:
// the holdings book removes the entry the moment a sell brings it to
// zero, so a zero-quantity position is never observable.
//
// AveragePrice is the weighted-average cost basis of the shares
// currently held. It is recomputed on buys only; sells reduce the
// quantity and leave the average untouched, matching standard
// average-cost accounting.
type Position struct {
	Symbol       string
	Quantity     int64
	AveragePrice decimal.Decimal
}
