package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shouvik/trackit"
)

type createCmd struct {
	name     string
	currency string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new notebook" }
func (*createCmd) Usage() string {
	return `track create -name <name> [-currency <symbol>]

  Creates a new notebook. The currency symbol defaults to ₹ and is purely
  cosmetic; see 'track currencies' for common symbols.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Notebook name")
	f.StringVar(&c.currency, "currency", "", "Currency symbol (defaults to ₹)")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	collection, err := loadCollection()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	collection, nb, err := trackit.CreateNotebook(collection, c.name, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating notebook: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := saveCollection(collection); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created notebook %q (%s) with currency %s\n", nb.Name, nb.ID, nb.Currency)
	return subcommands.ExitSuccess
}
