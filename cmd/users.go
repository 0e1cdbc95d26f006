package cmd

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/credentials"
	"github.com/google/subcommands"
)

type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list the registered accounts" }
func (*usersCmd) Usage() string {
	return `stocksim users

  Lists usernames and starting cash of the credential store. Password hashes are never printed.
`
}

func (*usersCmd) SetFlags(f *flag.FlagSet) {}

func (*usersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := credentials.Load(*usersFile, credentials.WithLogger(Logger()))
	if err != nil {
		fmt.Fprintf(stderr, "Error loading credential store: %v\n", err)
		return subcommands.ExitFailure
	}
	if store.Len() == 0 {
		fmt.Fprintf(stdout, "No account in %s\n", store.Path())
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tSTARTING CASH")
	for _, r := range store.Records() {
		fmt.Fprintf(w, "%s\t%s\n", r.Username, stocksim.M(r.Cash))
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
