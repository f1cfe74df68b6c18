package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"
	"github.com/shouvik/trackit"
)

// NotebooksMarkdown renders the notebook overview: one row per notebook in
// the given (already sorted) order.
func NotebooksMarkdown(nbs []trackit.Notebook) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Your Notebooks")

	if len(nbs) == 0 {
		doc.PlainText("You have no notebooks yet. Create one to get started.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Name", "Entries", "Currency", "Created", "ID"},
	}
	for _, nb := range nbs {
		table.Rows = append(table.Rows, []string{
			nb.Name,
			fmt.Sprintf("%d", len(nb.Transactions)),
			nb.Currency,
			time.UnixMilli(nb.CreatedAt).UTC().Format(trackit.DateFormat),
			nb.ID,
		})
	}
	doc.Table(table)

	return doc.String()
}
