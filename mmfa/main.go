package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/mmf/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, only active when invoked by the shell's completion hook.
	completion().Complete("mmfa")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	projection := map[string]complete.Predictor{
		"capital":     predict.Something,
		"monthly":     predict.Something,
		"months":      predict.Something,
		"tax":         predict.Something,
		"fees":        predict.Nothing,
		"d":           predict.Something,
		"c":           predict.Something,
		"round-daily": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"funds-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"compare": {Flags: projection},
			"project": {Flags: projection},
			"funds":   {},
			"import": {Flags: map[string]complete.Predictor{
				"p": predict.Something,
				"o": predict.Files("*.json"),
			}},
			"topic":  {Args: predict.Set{"readme", "model", "funds", "dates"}},
			"assist": {},
		},
	}
}
