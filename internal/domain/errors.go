package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrUserAlreadyExists    = errors.New("user_already_exists")
	ErrUserNotFound         = errors.New("user_not_found")
	ErrAccountNotFound      = errors.New("account_not_found")
	ErrPortfolioNotFound    = errors.New("portfolio_not_found")
	ErrStockNotFound        = errors.New("stock_not_found")
	ErrInsufficientFunds    = errors.New("insufficient_funds")
	ErrInsufficientHoldings = errors.New("insufficient_holdings")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
