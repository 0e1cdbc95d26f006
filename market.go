package stocksim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/stocksim/credentials"
)

// listing is a roster entry.
type listing struct {
	symbol, name string
	price        float64
}

// roster is the fixed list of instruments, in display order.
var roster = []listing{
	{"GOOGL", "Alphabet Inc.", 140.50},
	{"AAPL", "Apple Inc.", 175.22},
	{"MSFT", "Microsoft Corp.", 370.90},
	{"AMZN", "Amazon.com, Inc.", 155.46},
	{"TSLA", "Tesla, Inc.", 245.88},
}

// Market owns the instrument roster and the credential store.
//
// The roster is fixed for the lifetime of the Market, Stock pointers returned by Lookup and Stocks
// stay valid and only their prices change, during AdvanceDay.
type Market struct {
	stocks []*Stock
	rand   Rand
	users  *credentials.Store
}

// NewMarket creates a market with the built-in roster, using users as the credential store and r to move prices.
func NewMarket(users *credentials.Store, r Rand) *Market {
	m := &Market{
		stocks: make([]*Stock, 0, len(roster)),
		rand:   r,
		users:  users,
	}
	for _, l := range roster {
		m.stocks = append(m.stocks, NewStock(l.symbol, l.name, M(l.price)))
	}
	return m
}

// OpenMarket creates a market loading the credential store from path with opts.
// A missing store is an empty one, an unreadable one is an error.
func OpenMarket(path string, r Rand, opts ...credentials.Option) (*Market, error) {
	users, err := credentials.Load(path, opts...)
	if err != nil {
		return nil, err
	}
	return NewMarket(users, r), nil
}

// Stocks returns the roster in display order.
func (m *Market) Stocks() []*Stock { return m.stocks }

// Len returns the number of instruments.
func (m *Market) Len() int { return len(m.stocks) }

// Lookup finds a stock by symbol, ignoring case.
func (m *Market) Lookup(symbol string) (*Stock, bool) {
	symbol = strings.TrimSpace(symbol)
	for _, s := range m.stocks {
		if strings.EqualFold(s.Symbol(), symbol) {
			return s, true
		}
	}
	return nil, false
}

// AdvanceDay moves every price once, independently.
func (m *Market) AdvanceDay() {
	for _, s := range m.stocks {
		s.AdvanceDay(m.rand)
	}
}

// Users returns the credential store.
func (m *Market) Users() *credentials.Store { return m.users }

// Signup registers a new account and saves the credential store.
//
// If only the save failed, the account is usable for the running process and the returned error
// matches ErrNotPersisted.
func (m *Market) Signup(username, password string, startingCash Money) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("empty password: %w", ErrInvalidPassword)
	}
	if startingCash.IsNegative() {
		return fmt.Errorf("negative starting cash %s: %w", startingCash.Plain(), ErrInvalidAmount)
	}

	rec := credentials.NewRecord(username, password, startingCash.Decimal())
	if err := m.users.Add(rec); err != nil {
		if errors.Is(err, credentials.ErrExists) {
			return fmt.Errorf("%q: %w", username, ErrUserExists)
		}
		return err
	}
	if err := m.users.Save(); err != nil {
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	return nil
}

// Login authenticates a player and returns a fresh User holding the account's starting cash.
func (m *Market) Login(username, password string) (*User, error) {
	rec, ok := m.users.Get(username)
	if !ok || !rec.Matches(password) {
		return nil, ErrAuthFailed
	}
	return NewUser(rec.Username, M(rec.Cash), m), nil
}
