// Package cmd implements the CLI application to manage notebooks.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shouvik/trackit"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "notebooks")
	c.Register(&listCmd{}, "notebooks")
	c.Register(&deleteCmd{}, "notebooks")
	c.Register(&currenciesCmd{}, "notebooks")

	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&transactionsCmd{}, "transactions")
	c.Register(&summaryCmd{}, "transactions")

	c.Register(&exportCmd{}, "interchange")
	c.Register(&backupCmd{}, "interchange")
	c.Register(&restoreCmd{}, "interchange")

	c.Register(&insightCmd{}, "insights")
	c.Register(&topicCmd{}, "insights")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("file", "", "Path to the notebooks file (defaults to $TRACKIT_FILE, then notebooks.json)")

// dataFilePath resolves the data file at use time: the -file flag, the
// TRACKIT_FILE environment variable (which a .env file may set), then
// notebooks.json in the working directory. Resolving lazily lets the .env
// loading in main happen after flag defaults are built.
func dataFilePath() string {
	if *dataFile != "" {
		return *dataFile
	}
	if p := os.Getenv("TRACKIT_FILE"); p != "" {
		return p
	}
	return trackit.DefaultFile
}

// loadCollection reads the app collection file. A missing file loads as an
// empty collection.
func loadCollection() (trackit.Collection, error) {
	return trackit.LoadCollection(dataFilePath())
}

// saveCollection writes the app collection file back.
func saveCollection(c trackit.Collection) error {
	return trackit.SaveCollection(dataFilePath(), c)
}

// findNotebook resolves a notebook reference: by id first, then by exact
// name. The id wins when a notebook is named like another one's id.
func findNotebook(c trackit.Collection, ref string) (trackit.Notebook, error) {
	if nb, ok := c.Find(ref); ok {
		return nb, nil
	}
	for _, nb := range c {
		if nb.Name == ref {
			return nb, nil
		}
	}
	return trackit.Notebook{}, fmt.Errorf("no notebook with id or name %q", ref)
}

// printMarkdown renders a markdown document for the terminal, falling back to
// the raw text when rendering is not possible.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
