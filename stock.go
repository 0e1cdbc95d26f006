package stocksim

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Rand is the source of uniform samples in [0,1) used to move prices.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// MinPrice is the floor under which a price never goes.
var MinPrice = M(1)

// minDailyFactor is the lowest price ratio of a single day.
var minDailyFactor = decimal.RequireFromString("0.95")

// pricePrecision is the number of decimals kept after a day advance.
const pricePrecision = 8

// Stock is a tradable instrument with an immutable symbol and name, and a current price.
type Stock struct {
	symbol string
	name   string
	price  Money
}

// NewStock creates a stock. The symbol is stored upper case. A price below MinPrice is raised to MinPrice.
func NewStock(symbol, name string, price Money) *Stock {
	if price.LessThan(MinPrice) {
		price = MinPrice
	}
	return &Stock{
		symbol: strings.ToUpper(symbol),
		name:   name,
		price:  price,
	}
}

func (s *Stock) Symbol() string { return s.symbol }
func (s *Stock) Name() string   { return s.name }
func (s *Stock) Price() Money   { return s.price }

// AdvanceDay draws one sample u from r and moves the price by the fraction (u-0.5)/10.
// The new price is in [max(MinPrice, 0.95·old), 1.05·old).
func (s *Stock) AdvanceDay(r Rand) {
	f := decimal.NewFromFloat((r.Float64() - 0.5) / 10)
	// truncation keeps next below 1.05·old, it may go below 0.95·old though.
	next := s.price.value.Mul(decimal.NewFromInt(1).Add(f)).Truncate(pricePrecision)
	if low := s.price.value.Mul(minDailyFactor); next.LessThan(low) {
		next = low
	}
	s.price = Money{value: next}
	if s.price.LessThan(MinPrice) {
		s.price = MinPrice
	}
}

// String returns the listing form "<name> (<symbol>): $<price>".
func (s *Stock) String() string {
	return fmt.Sprintf("%s (%s): %s", s.name, s.symbol, s.price.Plain())
}
