package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shouvik/trackit"
)

type exportCmd struct {
	notebook string
	output   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a notebook's transactions as CSV" }
func (*exportCmd) Usage() string {
	return `track export -notebook <id|name> [-o <file>]

  Writes the notebook's transactions as CSV with every field quoted. The
  file name defaults to <notebook_name>_transactions.csv; use '-o -' to
  write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.notebook, "notebook", "", "Notebook id or name")
	f.StringVar(&c.output, "o", "", "Output file ('-' for stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.output == "-" {
		if err := trackit.EncodeCSV(os.Stdout, nb.Transactions, trackit.ExportColumns()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println()
		return subcommands.ExitSuccess
	}

	filename := c.output
	if filename == "" {
		filename = trackit.ExportFilename(nb.Name)
	}
	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating export file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := trackit.EncodeCSV(out, nb.Transactions, trackit.ExportColumns()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d transactions to %s\n", len(nb.Transactions), filename)
	return subcommands.ExitSuccess
}
