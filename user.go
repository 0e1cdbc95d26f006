package stocksim

// User is an authenticated player. It exclusively owns its Portfolio.
type User struct {
	username  string
	portfolio *Portfolio
}

// NewUser creates a user with a fresh portfolio holding cash.
func NewUser(username string, cash Money, quotes Quoter) *User {
	return &User{
		username:  username,
		portfolio: NewPortfolio(cash, quotes),
	}
}

func (u *User) Username() string      { return u.username }
func (u *User) Portfolio() *Portfolio { return u.portfolio }

// Buy purchases n shares of s at its current price.
// Cash is debited first, shares are only credited if the debit succeeded.
// A purchase that would overflow the share count is rejected as BadArgs before any debit.
func (u *User) Buy(s *Stock, n int) Outcome {
	if !u.portfolio.CanAddShares(s, n) {
		o := Outcome{Kind: BadArgs, Side: Buy, Quantity: n}
		if s != nil {
			o.Symbol = s.Symbol()
		}
		return o
	}
	o := Outcome{Side: Buy, Symbol: s.Symbol(), Quantity: n, Gross: s.Price().Mul(n)}
	if !u.portfolio.RemoveCash(o.Gross) {
		o.Kind = InsufficientFunds
		return o
	}
	// cannot fail: CanAddShares was checked and nothing moved since.
	_ = u.portfolio.AddShares(s, n)
	return o
}

// Sell sells n shares of s at its current price.
// Shares are removed first, cash is only credited if the removal succeeded.
func (u *User) Sell(s *Stock, n int) Outcome {
	if s == nil || n <= 0 {
		return Outcome{Kind: BadArgs, Side: Sell, Quantity: n}
	}
	o := Outcome{Side: Sell, Symbol: s.Symbol(), Quantity: n}
	if !u.portfolio.RemoveShares(s, n) {
		o.Kind = InsufficientShares
		return o
	}
	o.Gross = s.Price().Mul(n)
	// proceeds are strictly positive since the price is at least MinPrice.
	_ = u.portfolio.AddCash(o.Gross)
	return o
}
