package session

import (
	"errors"
	"fmt"

	"github.com/etnz/stocksim"
)

// authenticate runs one round of the login or sign up prompt.
// s.user is set on success, it is left nil when the player has to try again.
func (s *Session) authenticate() error {
	fmt.Fprintln(s.out, "1. Log In")
	fmt.Fprintln(s.out, "2. Sign Up")
	option, err := s.ask("Choose an option (1 or 2): ")
	if err != nil {
		return err
	}
	switch option {
	case "1":
		return s.login()
	case "2":
		return s.signup()
	default:
		fmt.Fprintln(s.out, "Invalid option. Please enter 1 or 2.")
		return nil
	}
}

func (s *Session) login() error {
	username, err := s.ask("Enter your username: ")
	if err != nil {
		return err
	}
	password, err := s.askPassword("Enter your password: ")
	if err != nil {
		return err
	}
	user, err := s.market.Login(username, password)
	if err != nil {
		s.logger.Printf("login %q: %v", username, err)
		fmt.Fprintln(s.out, "Login failed. Invalid username or password.")
		return nil
	}
	s.user = user
	fmt.Fprintf(s.out, "Login successful! Welcome back, %s!\n", user.Username())
	return nil
}

func (s *Session) signup() error {
	username, err := s.ask("Choose a username: ")
	if err != nil {
		return err
	}
	password, err := s.askPassword("Choose a password: ")
	if err != nil {
		return err
	}
	answer, err := s.ask("Enter your initial cash balance: $")
	if err != nil {
		return err
	}
	cash, perr := stocksim.ParseMoney(answer)
	if perr != nil {
		fmt.Fprintln(s.out, "Invalid cash amount.")
		return nil
	}

	err = s.market.Signup(username, password, cash)
	switch {
	case err == nil:
	case errors.Is(err, stocksim.ErrNotPersisted):
		// the account exists for this run, warn and go on.
		fmt.Fprintf(s.out, "Warning: your account could not be saved: %v\n", err)
	case errors.Is(err, stocksim.ErrUserExists):
		fmt.Fprintln(s.out, "Username already exists. Please try a different username.")
		return nil
	case errors.Is(err, stocksim.ErrInvalidUsername):
		fmt.Fprintln(s.out, "Invalid username. It cannot be empty or contain commas or line breaks.")
		return nil
	case errors.Is(err, stocksim.ErrInvalidPassword):
		fmt.Fprintln(s.out, "Invalid password. It cannot be empty.")
		return nil
	case errors.Is(err, stocksim.ErrInvalidAmount):
		fmt.Fprintln(s.out, "Invalid cash amount.")
		return nil
	default:
		fmt.Fprintf(s.out, "Sign up failed: %v\n", err)
		return nil
	}

	user, err := s.market.Login(username, password)
	if err != nil {
		// a registered account must authenticate with the same credentials.
		return fmt.Errorf("cannot log in the new account %q: %w", username, err)
	}
	s.user = user
	fmt.Fprintf(s.out, "Account created successfully! Welcome, %s!\n", user.Username())
	return nil
}
