package trackit

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Column names one CSV column: its literal header and how to extract the
// field from a transaction.
type Column struct {
	Header string
	Value  func(Transaction) string
}

// ExportColumns returns the export file's column set, in order. The amount
// is stringified in its natural decimal form; no field is ever omitted.
func ExportColumns() []Column {
	return []Column{
		{"Date", func(t Transaction) string { return t.Date.String() }},
		{"Item", func(t Transaction) string { return t.Item }},
		{"Category", func(t Transaction) string { return string(t.Category) }},
		{"Type", func(t Transaction) string { return string(t.Type) }},
		{"Amount", func(t Transaction) string { return t.Amount.String() }},
		{"Payment Mode", func(t Transaction) string { return t.PaymentMode }},
		{"Description", func(t Transaction) string { return t.Description }},
		{"Comments", func(t Transaction) string { return t.Comments }},
	}
}

// EncodeCSV writes the transactions as CSV text: a literal header row, then
// one row per transaction with every field individually double-quoted and
// inner quotes doubled, rows joined by newline.
//
// The stdlib csv writer quotes only when needed, so the always-quoted
// contract is written by hand here.
func EncodeCSV(w io.Writer, txs []Transaction, columns []Column) error {
	row := make([]string, len(columns))

	for i, col := range columns {
		row[i] = quote(col.Header)
	}
	if _, err := io.WriteString(w, strings.Join(row, ",")); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, tx := range txs {
		for i, col := range columns {
			row[i] = quote(col.Value(tx))
		}
		if _, err := io.WriteString(w, "\n"+strings.Join(row, ",")); err != nil {
			return fmt.Errorf("cannot write CSV row: %w", err)
		}
	}
	return nil
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// ExportFilename derives the export file name from a notebook name, with
// whitespace runs collapsed to underscores.
func ExportFilename(notebookName string) string {
	return whitespaceRE.ReplaceAllString(notebookName, "_") + "_transactions.csv"
}
