// Package cmd implements the CLI application to project and compare money
// market fund returns.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/mmf"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&compareCmd{}, "analysis")
	c.Register(&projectCmd{}, "analysis")

	c.Register(&fundsCmd{}, "catalog")
	c.Register(&importCmd{}, "catalog")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var fundsFile = flag.String("funds-file", "funds.json", "Path to the fund catalog file (JSON)")

// LoadFunds loads the fund catalog from the app funds file.
func LoadFunds() ([]mmf.Fund, error) {
	f, err := os.Open(*fundsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, fund catalog does not exist, using the built-in catalog instead")
		return mmf.DefaultFunds(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mmf.DecodeFunds(f)
}
