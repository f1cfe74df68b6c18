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

type listCmd struct {
	sort string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all notebooks" }
func (*listCmd) Usage() string {
	return `track list [-sort <order>]

  Lists every notebook with its entry count, currency and creation date.
  Orders: date-desc (default), date-asc, name-asc, name-desc.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", string(trackit.DateDesc), "Sort order (date-desc, date-asc, name-asc, name-desc)")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	collection, err := loadCollection()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	nbs := trackit.SortNotebooks(collection, trackit.SortOrder(c.sort))
	printMarkdown(renderer.NotebooksMarkdown(nbs))
	return subcommands.ExitSuccess
}
