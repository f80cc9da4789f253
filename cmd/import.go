package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/mmf"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	path   string
	output string
}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "import a fund catalog from a provider's JSON export"
}
func (*importCmd) Usage() string {
	return `mmfa import [-p <jsonpath>] [-o <file>] [<provider.json>]

  Reads a provider's JSON export (from the given file, or stdin), extracts
  the fund list selected by the jsonpath expression, and writes it as the
  native catalog file.

Usage Examples:
# Extract the products list from a provider export.
$ mmfa import -p '$.data.products' provider.json

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "p", "$.funds", "jsonpath expression selecting the list of fund objects")
	f.StringVar(&c.output, "o", "", "Output catalog file. Defaults to the -funds-file flag.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader = os.Stdin
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening provider file %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	funds, err := mmf.ExtractFunds(in, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = *fundsFile
	}
	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating catalog file %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := mmf.EncodeFunds(out, funds); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing catalog file %q: %v\n", output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully imported %d funds into %s\n", len(funds), output)
	return subcommands.ExitSuccess
}
