package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mmf/renderer"
	"github.com/google/subcommands"
)

type fundsCmd struct{}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list the funds in the catalog" }
func (*fundsCmd) Usage() string {
	return `mmfa funds

  Lists the funds in the catalog with their rates, management fees, and
  minimum investments.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	funds, err := LoadFunds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load fund catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CatalogMarkdown(funds))
	return subcommands.ExitSuccess
}
