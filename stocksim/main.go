package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stocksim/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	completion(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	if flag.NArg() == 0 {
		// keeps the global flags already parsed.
		flag.CommandLine.Parse([]string{cmd.DefaultCommand})
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests, it exits when the shell asked for completions.
func completion(name string) {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["signup"].Flags = map[string]complete.Predictor{
		"u":    predict.Nothing,
		"cash": predict.Nothing,
	}
	sub["market"].Flags = map[string]complete.Predictor{
		"days": predict.Set{"1", "5", "30", "365"},
	}

	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"users-file": predict.Files("*"),
			"seed":       predict.Nothing,
			"v":          predict.Nothing,
		},
	}
	root.Complete(name)
}
