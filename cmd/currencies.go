package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shouvik/trackit"
)

type currenciesCmd struct{}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list common currency symbols" }
func (*currenciesCmd) Usage() string {
	return `track currencies

  Lists the reference currency symbols offered at notebook creation.
`
}

func (*currenciesCmd) SetFlags(f *flag.FlagSet) {}

func (*currenciesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, c := range trackit.Currencies() {
		fmt.Printf("%-4s %-4s %s\n", c.Code, c.Symbol, c.Name)
	}
	return subcommands.ExitSuccess
}
