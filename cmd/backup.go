package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shouvik/trackit"
)

type backupCmd struct {
	output string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "write a snapshot of every notebook" }
func (*backupCmd) Usage() string {
	return `track backup [-o <file>]

  Writes all notebooks as a standalone JSON snapshot, restorable with
  'track restore'. Defaults to stdout.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	collection, err := loadCollection()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		if err := trackit.EncodeNotebooks(os.Stdout, collection); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := trackit.EncodeNotebooks(out, collection); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Backed up %d notebooks to %s\n", len(collection), c.output)
	return subcommands.ExitSuccess
}
