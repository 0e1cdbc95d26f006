package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/stocksim"
	"github.com/google/subcommands"
)

type signupCmd struct {
	username string
	cash     string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create an account without starting a game" }
func (*signupCmd) Usage() string {
	return `stocksim signup -u <username> -cash <amount>

  Creates an account in the credential store. The password is read from the terminal,
  or from the first line of the standard input when it is not a terminal.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username of the new account")
	f.StringVar(&c.cash, "cash", "10000", "Starting cash of the new account")
}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		fmt.Fprintln(stderr, "Error: -u flag is required.")
		return subcommands.ExitUsageError
	}
	cash, err := stocksim.ParseMoney(c.cash)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing -cash %q: %v\n", c.cash, err)
		return subcommands.ExitUsageError
	}

	password, err := c.password()
	if err != nil {
		fmt.Fprintf(stderr, "Error reading password: %v\n", err)
		return subcommands.ExitFailure
	}

	market, err := OpenMarket()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening the market: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := market.Signup(c.username, password, cash); err != nil {
		fmt.Fprintf(stderr, "Error creating account %q: %v\n", c.username, err)
		if errors.Is(err, stocksim.ErrNotPersisted) {
			return subcommands.ExitFailure
		}
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(stdout, "Account %q created with %s in %s\n", c.username, cash, market.Users().Path())
	return subcommands.ExitSuccess
}

func (c *signupCmd) password() (string, error) {
	if stdin == os.Stdin && stdinIsTerminal() {
		fmt.Fprint(stderr, "Choose a password: ")
		p, err := readPassword()
		fmt.Fprintln(stderr)
		return strings.TrimSpace(p), err
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
