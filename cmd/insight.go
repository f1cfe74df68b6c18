package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shouvik/trackit/insight"
)

type insightCmd struct {
	notebook string
}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "AI summary of a notebook's spending habits" }
func (*insightCmd) Usage() string {
	return `track insight -notebook <id|name>

  Asks Gemini for a short summary of recent spending habits and one saving
  tip. Requires GEMINI_API_KEY (a .env file in the working directory is
  loaded at startup).
`
}

func (c *insightCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.notebook, "notebook", "", "Notebook id or name")
}

func (c *insightCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	client, err := insight.NewClient(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary, err := insight.Summarize(ctx, client, nb)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(summary)
	return subcommands.ExitSuccess
}
