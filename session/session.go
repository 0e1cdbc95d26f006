// Package session implements the interactive game loop: authentication first, then the main menu.
//
// A Session reads one answer per line and writes free form text. It never fails on bad input,
// it prints a diagnostic and asks again. It ends on the exit option or at the end of the input.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/renderer"
)

// Menu options of the main loop.
const (
	optViewMarket = iota + 1
	optViewPortfolio
	optBuy
	optSell
	optAdvanceDay
	optExit
)

// PasswordReader reads a password without echoing it.
type PasswordReader func() (string, error)

// Session is a single authenticated run of the game.
type Session struct {
	market       *stocksim.Market
	in           *bufio.Scanner
	out          io.Writer
	readPassword PasswordReader
	logger       *log.Logger

	user *stocksim.User
}

// Option configures a Session.
type Option func(*Session)

// WithPasswordReader reads passwords with r instead of the regular input.
func WithPasswordReader(r PasswordReader) Option {
	return func(s *Session) { s.readPassword = r }
}

// WithLogger logs every dispatched command to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New creates a session on market, reading answers from in and writing to out.
func New(market *stocksim.Market, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		market: market,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// User returns the authenticated user, nil before a successful login.
func (s *Session) User() *stocksim.User { return s.user }

// Run plays the game until the player exits or the input ends, both return nil.
// Any other returned error is an I/O failure.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to the Stock Market Simulator!")
	err := s.play(ctx)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err == nil {
		fmt.Fprintln(s.out, "Thank you for playing. Goodbye!")
	}
	return err
}

func (s *Session) play(ctx context.Context) error {
	for s.user == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.authenticate(); err != nil {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		answer, err := s.ask("Choose an option: ")
		if err != nil {
			return err
		}
		choice, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number between 1 and 6.")
			continue
		}
		s.logger.Printf("%s: option %d", s.user.Username(), choice)

		switch choice {
		case optViewMarket:
			fmt.Fprint(s.out, renderer.Market(s.market))
		case optViewPortfolio:
			fmt.Fprintln(s.out, renderer.Portfolio(s.user.Portfolio()))
		case optBuy:
			err = s.buy()
		case optSell:
			err = s.sell()
		case optAdvanceDay:
			fmt.Fprintln(s.out, "\nMarket is updating for the next day...")
			s.market.AdvanceDay()
			fmt.Fprintln(s.out, "Market update complete.")
			fmt.Fprintln(s.out)
			fmt.Fprint(s.out, renderer.Market(s.market))
		case optExit:
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1 and 6.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "\n===== Main Menu =====")
	fmt.Fprintln(s.out, "1. View Market Prices")
	fmt.Fprintln(s.out, "2. View Your Portfolio")
	fmt.Fprintln(s.out, "3. Buy Stock")
	fmt.Fprintln(s.out, "4. Sell Stock")
	fmt.Fprintln(s.out, "5. Advance to Next Day")
	fmt.Fprintln(s.out, "6. Exit Simulator")
	fmt.Fprintln(s.out, "=====================")
}

// ask prints prompt and returns the next trimmed line. It returns io.EOF at the end of the input.
func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("cannot read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// askPassword is like ask but uses the password reader when there is one.
func (s *Session) askPassword(prompt string) (string, error) {
	if s.readPassword == nil {
		return s.ask(prompt)
	}
	fmt.Fprint(s.out, prompt)
	p, err := s.readPassword()
	fmt.Fprintln(s.out)
	if err != nil {
		return "", fmt.Errorf("cannot read password: %w", err)
	}
	return strings.TrimSpace(p), nil
}

// askShares asks for a share count. ok is false if the answer is not a whole number.
func (s *Session) askShares(prompt string) (n int, ok bool, err error) {
	answer, err := s.ask(prompt)
	if err != nil {
		return 0, false, err
	}
	n, perr := strconv.Atoi(answer)
	if perr != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a whole number for shares.")
		return 0, false, nil
	}
	return n, true, nil
}
