package session

import (
	"fmt"

	"github.com/etnz/stocksim/renderer"
)

func (s *Session) buy() error {
	fmt.Fprint(s.out, renderer.Market(s.market))
	symbol, err := s.ask("Enter the symbol of the stock you want to buy: ")
	if err != nil {
		return err
	}
	stock, ok := s.market.Lookup(symbol)
	if !ok {
		fmt.Fprintln(s.out, "Invalid stock symbol.")
		return nil
	}
	n, ok, err := s.askShares("Enter the number of shares to buy: ")
	if err != nil || !ok {
		return err
	}
	o := s.user.Buy(stock, n)
	s.logger.Printf("%s: %s %d %s: %v", s.user.Username(), o.Side, n, stock.Symbol(), o.Kind)
	fmt.Fprintln(s.out, renderer.Outcome(o))
	return nil
}

func (s *Session) sell() error {
	p := s.user.Portfolio()
	fmt.Fprintln(s.out, renderer.Portfolio(p))
	if p.IsEmpty() {
		fmt.Fprintln(s.out, "You have no stocks to sell.")
		return nil
	}
	symbol, err := s.ask("Enter the symbol of the stock you want to sell: ")
	if err != nil {
		return err
	}
	stock, ok := s.market.Lookup(symbol)
	if !ok {
		fmt.Fprintln(s.out, "Invalid stock symbol. You do not own this stock.")
		return nil
	}
	n, ok, err := s.askShares("Enter the number of shares to sell: ")
	if err != nil || !ok {
		return err
	}
	o := s.user.Sell(stock, n)
	s.logger.Printf("%s: %s %d %s: %v", s.user.Username(), o.Side, n, stock.Symbol(), o.Kind)
	fmt.Fprintln(s.out, renderer.Outcome(o))
	return nil
}
