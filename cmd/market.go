package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stocksim/renderer"
	"github.com/google/subcommands"
)

type marketCmd struct {
	days int
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display the market prices" }
func (*marketCmd) Usage() string {
	return `stocksim [-seed <n>] market [-days <n>]

  Displays the market roster, after advancing it by n simulated days.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 0, "Number of simulated days to advance before displaying")
}

func (c *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days < 0 {
		fmt.Fprintln(stderr, "Error: -days cannot be negative.")
		return subcommands.ExitUsageError
	}
	market, err := OpenMarket()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening the market: %v\n", err)
		return subcommands.ExitFailure
	}
	for range c.days {
		market.AdvanceDay()
	}
	fmt.Fprint(stdout, renderer.Market(market))
	return subcommands.ExitSuccess
}
