package stocksim

import "fmt"

// Side is the direction of a trade.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "sell"
	}
	return "buy"
}

// OutcomeKind tags the result of a trade.
type OutcomeKind int

const (
	// Ok means cash and shares moved.
	Ok OutcomeKind = iota
	// BadArgs means the stock was unknown or the share count not strictly positive.
	BadArgs
	// InsufficientFunds means a purchase cost more than the cash balance.
	InsufficientFunds
	// InsufficientShares means a sale asked for more shares than held.
	InsufficientShares
)

func (k OutcomeKind) String() string {
	switch k {
	case Ok:
		return "ok"
	case InsufficientFunds:
		return "insufficient funds"
	case InsufficientShares:
		return "insufficient shares"
	default:
		return "bad arguments"
	}
}

// Outcome is the result of a Buy or a Sell. Nothing moved unless Kind is Ok.
type Outcome struct {
	Kind     OutcomeKind
	Side     Side
	Symbol   string
	Quantity int
	// Gross is the cost of a purchase or the proceeds of a sale.
	Gross Money
}

// OK reports whether the trade went through.
func (o Outcome) OK() bool { return o.Kind == Ok }

// String returns the message shown to the player.
func (o Outcome) String() string {
	switch o.Kind {
	case Ok:
		if o.Side == Sell {
			return fmt.Sprintf("Successfully sold %d shares of %s for %s", o.Quantity, o.Symbol, o.Gross.Plain())
		}
		return fmt.Sprintf("Successfully purchased %d shares of %s for %s", o.Quantity, o.Symbol, o.Gross.Plain())
	case InsufficientFunds:
		return "Error: Insufficient funds to complete purchase."
	case InsufficientShares:
		return fmt.Sprintf("Error: You do not own enough shares of %s to sell.", o.Symbol)
	default:
		return "Invalid stock or number of shares."
	}
}
