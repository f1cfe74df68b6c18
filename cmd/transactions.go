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

type transactionsCmd struct {
	notebook string
	typ      string
	search   string
	sort     string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list a notebook's transactions" }
func (*transactionsCmd) Usage() string {
	return `track transactions -notebook <id|name> [-type all|Expenditure|Earning]
                   [-search <term>] [-sort <order>]

  Lists transactions, newest first by default. The search term matches item,
  description, category and payment mode, case-insensitively.
  Orders: date-desc (default), date-asc, amount-desc, amount-asc.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.notebook, "notebook", "", "Notebook id or name")
	f.StringVar(&c.typ, "type", trackit.FilterAll, "Type filter (all, Expenditure, Earning)")
	f.StringVar(&c.search, "search", "", "Case-insensitive search term")
	f.StringVar(&c.sort, "sort", string(trackit.DateDesc), "Sort order (date-desc, date-asc, amount-desc, amount-asc)")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	txs := trackit.FilterAndSort(nb.Transactions, trackit.Query{
		Type:   c.typ,
		Search: c.search,
		Sort:   trackit.SortOrder(c.sort),
	})
	printMarkdown(renderer.TransactionsMarkdown(nb, txs))
	return subcommands.ExitSuccess
}
