package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocksim/session"
	"github.com/google/subcommands"
)

type playCmd struct{}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "log in or sign up, then trade on the simulated market" }
func (*playCmd) Usage() string {
	return `stocksim [-users-file <file>] [-seed <n>] play

  Starts an interactive game. This is the default command.
`
}

func (*playCmd) SetFlags(f *flag.FlagSet) {}

func (*playCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := OpenMarket()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening the market: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := []session.Option{session.WithLogger(Logger())}
	if stdin == os.Stdin && stdinIsTerminal() {
		opts = append(opts, session.WithPasswordReader(readPassword))
	}

	s := session.New(market, stdin, stdout, opts...)
	if err := s.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
