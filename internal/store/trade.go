package store

import (
	"sync"

	"github.com/paperbroker/internal/domain"
)

// TradeLog is a thread-safe append-only record of executed trades.
// Insertion order is the total order; the log is never compacted.
type TradeLog struct {
	mu     sync.RWMutex
	trades []*domain.Trade
}

// NewTradeLog creates an empty TradeLog.
func NewTradeLog() *TradeLog {
	return &TradeLog{}
}

// Append adds a trade to the log.
func (l *TradeLog) Append(t *domain.Trade) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.trades = append(l.trades, t)
}

// Recent returns the last n trades, newest first. Returns an empty
// slice when the log is empty or n <= 0.
func (l *TradeLog) Recent(n int) []*domain.Trade {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > len(l.trades) {
		n = len(l.trades)
	}
	if n <= 0 {
		return []*domain.Trade{}
	}

	result := make([]*domain.Trade, n)
	for i := 0; i < n; i++ {
		result[i] = l.trades[len(l.trades)-1-i]
	}
	return result
}

// Len returns the total number of trades recorded.
func (l *TradeLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.trades)
}
