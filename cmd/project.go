package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/mmf"
	"github.com/etnz/mmf/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	params projectionFlags
}

func (*projectCmd) Name() string { return "project" }
func (*projectCmd) Synopsis() string {
	return "display the day-accurate projection for a single fund"
}
func (*projectCmd) Usage() string {
	return `mmfa project [-capital <amount>] [-monthly <amount>] [-months n] <fund>

  Projects a single fund's balance day by day and reports the monthly
  progression, interest earned, fees paid, and net return. The fund is
  selected by name from the catalog.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.params.SetFlags(f)
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one fund name")
		return subcommands.ExitUsageError
	}
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
	fund, err := findFund(funds, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	result, err := mmf.Project(fund, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProjectionMarkdown(fund, result, p))
	return subcommands.ExitSuccess
}

// findFund selects a fund by name, ignoring case.
func findFund(funds []mmf.Fund, name string) (mmf.Fund, error) {
	for _, f := range funds {
		if strings.EqualFold(f.Name(), name) {
			return f, nil
		}
	}
	return mmf.Fund{}, fmt.Errorf("fund %q not found in the catalog", name)
}
