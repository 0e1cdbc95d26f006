package stocksim

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Quoter resolves a symbol into a Market owned Stock.
type Quoter interface {
	Lookup(symbol string) (*Stock, bool)
}

// Portfolio is a cash balance plus integer share holdings keyed by symbol.
//
// The cash balance is never negative and a holding never has a zero or negative count:
// a holding is removed when its count drops to zero.
type Portfolio struct {
	cash     Money
	holdings map[string]int
	quotes   Quoter
}

// Holding is a snapshot of a single position.
type Holding struct {
	Stock  *Stock
	Shares int
}

// Value returns the market value of the holding at the stock's current price.
func (h Holding) Value() Money { return h.Stock.Price().Mul(h.Shares) }

// NewPortfolio creates a portfolio with a starting cash balance. Prices are resolved through quotes.
func NewPortfolio(cash Money, quotes Quoter) *Portfolio {
	if cash.IsNegative() {
		cash = M(0)
	}
	return &Portfolio{
		cash:     cash,
		holdings: make(map[string]int),
		quotes:   quotes,
	}
}

// Cash returns the current cash balance.
func (p *Portfolio) Cash() Money { return p.cash }

// Shares returns the number of shares held for symbol, 0 if none.
func (p *Portfolio) Shares(symbol string) int { return p.holdings[strings.ToUpper(symbol)] }

// AddCash credits a strictly positive amount.
func (p *Portfolio) AddCash(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("cannot add %s: %w", amount.Plain(), ErrInvalidAmount)
	}
	p.cash = p.cash.Add(amount)
	return nil
}

// RemoveCash debits amount if the balance covers it and reports whether it did.
func (p *Portfolio) RemoveCash(amount Money) bool {
	if amount.IsNegative() || p.cash.LessThan(amount) {
		return false
	}
	p.cash = p.cash.Sub(amount)
	return true
}

// CanAddShares reports whether AddShares(s, n) would succeed.
func (p *Portfolio) CanAddShares(s *Stock, n int) bool {
	return s != nil && n > 0 && n <= math.MaxInt-p.holdings[s.Symbol()]
}

// AddShares adds n > 0 shares of s. The resulting count must fit in an int.
func (p *Portfolio) AddShares(s *Stock, n int) error {
	if !p.CanAddShares(s, n) {
		return fmt.Errorf("cannot add %d shares: %w", n, ErrInvalidShares)
	}
	p.holdings[s.Symbol()] += n
	return nil
}

// RemoveShares removes n shares of s if at least n are held and reports whether it did.
func (p *Portfolio) RemoveShares(s *Stock, n int) bool {
	if s == nil || n <= 0 {
		return false
	}
	held := p.holdings[s.Symbol()]
	if held < n {
		return false
	}
	if held == n {
		delete(p.holdings, s.Symbol())
		return true
	}
	p.holdings[s.Symbol()] = held - n
	return true
}

// IsEmpty reports whether no shares are held.
func (p *Portfolio) IsEmpty() bool { return len(p.holdings) == 0 }

// Holdings returns the positions sorted by symbol.
func (p *Portfolio) Holdings() []Holding {
	list := make([]Holding, 0, len(p.holdings))
	for symbol, n := range p.holdings {
		s, ok := p.quotes.Lookup(symbol)
		if !ok {
			// holdings are only created from roster stocks.
			panic("holding on a symbol outside of the roster: " + symbol)
		}
		list = append(list, Holding{Stock: s, Shares: n})
	}
	slices.SortFunc(list, func(a, b Holding) int { return strings.Compare(a.Stock.Symbol(), b.Stock.Symbol()) })
	return list
}

// TotalValue returns the cash plus the market value of every holding.
func (p *Portfolio) TotalValue() Money {
	total := p.cash
	for _, h := range p.Holdings() {
		total = total.Add(h.Value())
	}
	return total
}
