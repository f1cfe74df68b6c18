// Package renderer renders notebook reports to markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shouvik/trackit"
)

// SummaryMarkdown renders a notebook's aggregate view: balance, inflow and
// outflow totals, and the spending breakdown by category.
func SummaryMarkdown(nb trackit.Notebook, s trackit.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Notebook %s", nb.Name))
	doc.PlainText(fmt.Sprintf("Available Balance: %s %s", nb.Currency, s.Balance))

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Flow", "Amount"},
		Rows: [][]string{
			{"Inflow", fmt.Sprintf("+%s%s", nb.Currency, s.TotalEarnings)},
			{"Outflow", fmt.Sprintf("-%s%s", nb.Currency, s.TotalExpenditure)},
		},
	})

	if len(s.Categories) > 0 {
		doc.H2("Spending by Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Category", "Amount", "Share"},
		}
		for _, ct := range s.Categories {
			table.Rows = append(table.Rows, []string{
				string(ct.Category),
				fmt.Sprintf("%s %s", nb.Currency, ct.Total),
				share(ct.Total, s.TotalExpenditure),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

func share(part, whole trackit.Amount) string {
	if whole.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", part.Float64()/whole.Float64()*100)
}
