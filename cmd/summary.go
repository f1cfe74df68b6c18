package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shouvik/trackit"
	"github.com/shouvik/trackit/renderer"
)

type summaryCmd struct {
	notebook string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show a notebook's balance and category breakdown" }
func (*summaryCmd) Usage() string {
	return `track summary -notebook <id|name>

  Shows the available balance, the inflow and outflow totals, and the
  spending breakdown by category.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.notebook, "notebook", "", "Notebook id or name")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.SummaryMarkdown(nb, trackit.Aggregate(nb.Transactions)))
	return subcommands.ExitSuccess
}
