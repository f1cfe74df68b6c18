package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shouvik/trackit"
)

type deleteCmd struct {
	notebook string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a notebook and all its transactions" }
func (*deleteCmd) Usage() string {
	return `track delete -notebook <id|name>

  Deletes a notebook and everything in it. There is no undo; take a backup
  first (see 'track topic backup').
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.notebook, "notebook", "", "Notebook id or name")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.notebook == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	collection, err := loadCollection()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	nb, err := findNotebook(collection, c.notebook)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	collection = trackit.DeleteNotebook(collection, nb.ID)
	if err := saveCollection(collection); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted notebook %q (%s) and %d transactions\n", nb.Name, nb.ID, len(nb.Transactions))
	return subcommands.ExitSuccess
}
