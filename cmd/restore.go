package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/shouvik/trackit"
)

type restoreCmd struct {
	input string
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "merge a snapshot back into your notebooks" }
func (*restoreCmd) Usage() string {
	return `track restore -i <file>

  Merges a 'track backup' snapshot. Notebooks whose id already exists are
  skipped untouched; restoring the same file twice is a no-op.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Snapshot file to restore")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	raw, err := os.ReadFile(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshot %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	names, err := checkSnapshot(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Snapshot %q is not restorable: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	if len(names) > 0 {
		fmt.Printf("Merging snapshot of: %s\n", strings.Join(names, ", "))
	}

	incoming, err := trackit.DecodeNotebooks(bytes.NewReader(raw))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	collection, err := loadCollection()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	before := len(collection)
	collection = trackit.ImportNotebooks(collection, incoming)
	if err := saveCollection(collection); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	added := len(collection) - before
	fmt.Printf("Restored %d notebooks (%d skipped as already present)\n", added, len(incoming)-added)
	return subcommands.ExitSuccess
}

// checkSnapshot verifies the snapshot shape before any merge happens: a JSON
// array whose every element carries a non-empty string id. It returns the
// notebook names found, for the pre-merge report.
func checkSnapshot(raw []byte) ([]string, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, ok := v.([]interface{}); !ok {
		return nil, fmt.Errorf("top-level value must be a JSON array of notebooks")
	}

	ids, err := jsonpath.Get("$[*].id", v)
	if err != nil {
		return nil, fmt.Errorf("cannot inspect notebook ids: %w", err)
	}
	list, _ := ids.([]interface{})
	if n := len(v.([]interface{})); len(list) != n {
		return nil, fmt.Errorf("%d of %d notebooks have no id", n-len(list), n)
	}
	for i, id := range list {
		s, ok := id.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("notebook #%d has no usable id", i)
		}
	}

	var names []string
	if found, err := jsonpath.Get("$[*].name", v); err == nil {
		for _, name := range found.([]interface{}) {
			if s, ok := name.(string); ok {
				names = append(names, s)
			}
		}
	}
	return names, nil
}
