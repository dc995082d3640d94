package marketdata

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// HistoryDays is the number of daily points in a generated history.
const HistoryDays = 30

// PricePoint is one day of generated price history.
type PricePoint struct {
	Date  string // YYYY-MM-DD
	Price decimal.Decimal
}

// GenerateHistory produces a daily random-walk ending today, starting
// from the given price, with steps of up to ±5% per day. The walk is
// regenerated on every call; it is display data, not a record.
func GenerateHistory(start decimal.Decimal, days int) []PricePoint {
	now := time.Now()
	price := start
	points := make([]PricePoint, 0, days)

	for i := 0; i < days; i++ {
		step := decimal.NewFromFloat(rand.Float64()*0.1 - 0.05)
		price = price.Mul(decimal.NewFromInt(1).Add(step)).Round(2)

		date := now.AddDate(0, 0, -(days - 1 - i)).Format("2006-01-02")
		points = append(points, PricePoint{Date: date, Price: price})
	}
	return points
}
