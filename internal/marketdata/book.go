package marketdata

import (
	"math/rand"

	"github.com/google/btree"
	"github.com/shopspring/decimal"
)

// DepthLevel is one aggregated row of the synthetic depth ladder.
// Total is the running size from the top of the side down to and
// including this level.
type DepthLevel struct {
	Price decimal.Decimal
	Size  int64
	Total int64

	seq int // insertion sequence, tie-break for equal prices
}

// Depth is a generated order-book snapshot for one symbol.
type Depth struct {
	Symbol string
	Bids   []DepthLevel // price descending
	Asks   []DepthLevel // price ascending
}

// bidLess orders the bid side price descending, so Ascend walks from
// the best bid down.
func bidLess(a, b DepthLevel) bool {
	if !a.Price.Equal(b.Price) {
		return a.Price.GreaterThan(b.Price)
	}
	return a.seq < b.seq
}

// askLess orders the ask side price ascending, so Ascend walks from
// the best ask up.
func askLess(a, b DepthLevel) bool {
	if !a.Price.Equal(b.Price) {
		return a.Price.LessThan(b.Price)
	}
	return a.seq < b.seq
}

// GenerateDepth builds a synthetic ladder of the given number of
// levels on each side of the current price. Level offsets carry a
// random jitter, so levels are generated out of price order and the
// B-trees put each side back in priority order before the running
// totals are computed.
func GenerateDepth(symbol string, price decimal.Decimal, levels int) Depth {
	const degree = 32
	bids := btree.NewG[DepthLevel](degree, bidLess)
	asks := btree.NewG[DepthLevel](degree, askLess)

	for i := 0; i < levels; i++ {
		offset := decimal.NewFromFloat(float64(i+1)*0.05 + rand.Float64()*0.1)

		bids.ReplaceOrInsert(DepthLevel{
			Price: price.Sub(offset).Round(2),
			Size:  rand.Int63n(500) + 10,
			seq:   i,
		})
		asks.ReplaceOrInsert(DepthLevel{
			Price: price.Add(offset).Round(2),
			Size:  rand.Int63n(500) + 10,
			seq:   i,
		})
	}

	return Depth{
		Symbol: symbol,
		Bids:   collect(bids),
		Asks:   collect(asks),
	}
}

// collect walks a side in priority order, accumulating running totals.
func collect(side *btree.BTreeG[DepthLevel]) []DepthLevel {
	result := make([]DepthLevel, 0, side.Len())
	var total int64
	side.Ascend(func(l DepthLevel) bool {
		total += l.Size
		l.Total = total
		result = append(result, l)
		return true
	})
	return result
}
