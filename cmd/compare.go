package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mmf"
	"github.com/etnz/mmf/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	params projectionFlags
}

func (*compareCmd) Name() string { return "compare" }
func (*compareCmd) Synopsis() string {
	return "project all funds in the catalog and rank them by final balance"
}
func (*compareCmd) Usage() string {
	return `mmfa compare [-capital <amount>] [-monthly <amount>] [-months n] [-tax <percent>] [-fees] [-d <date>]

  Projects every fund in the catalog over the same parameters, ranks them by
  final balance, and reports the best performer's monthly progression.
  Funds whose minimum investment exceeds the capital are listed as excluded.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	c.params.SetFlags(f)
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.params.parameters()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	funds, err := LoadFunds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load fund catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	comparison, err := mmf.Compare(funds, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ComparisonMarkdown(comparison, p))
	return subcommands.ExitSuccess
}
