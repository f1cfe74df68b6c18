package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shouvik/trackit"
)

// TransactionsMarkdown renders a (typically filtered and sorted) transaction
// listing of a notebook as a markdown table.
func TransactionsMarkdown(nb trackit.Notebook, txs []trackit.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Notebook %s", nb.Name))

	if len(txs) == 0 {
		doc.PlainText("No activity found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignLeft,
		},
		Header: []string{"Date", "Item", "Category", "Amount", "Payment Mode", "ID"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			tx.Item,
			string(tx.Category),
			signedAmount(nb, tx),
			tx.PaymentMode,
			tx.ID,
		})
	}
	doc.Table(table)

	return doc.String()
}

// signedAmount prefixes expenditures with '-' and earnings with '+', as the
// listing view does.
func signedAmount(nb trackit.Notebook, tx trackit.Transaction) string {
	sign := "+"
	if tx.Type == trackit.Expenditure {
		sign = "-"
	}
	return fmt.Sprintf("%s%s%s", sign, nb.Currency, tx.Amount)
}
