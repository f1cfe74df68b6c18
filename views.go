package trackit

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects how a listing is ordered. Transaction listings accept
// the date and amount orders, notebook listings the date and name orders;
// an unrecognized value falls back to DateDesc.
type SortOrder string

const (
	DateDesc   SortOrder = "date-desc"
	DateAsc    SortOrder = "date-asc"
	AmountDesc SortOrder = "amount-desc"
	AmountAsc  SortOrder = "amount-asc"
	NameAsc    SortOrder = "name-asc"
	NameDesc   SortOrder = "name-desc"
)

// FilterAll is the type filter value that keeps every transaction.
const FilterAll = "all"

// Query describes a transaction listing: an optional type filter, an
// optional case-insensitive search term, and a sort order.
type Query struct {
	// Type keeps only transactions of the given type; "all" or empty keeps
	// everything.
	Type string
	// Search keeps transactions whose item, description, category, or
	// payment mode contains the term, case-insensitively.
	Search string
	Sort   SortOrder
}

// FilterAndSort applies the query to a transaction list and returns a new
// ordered slice. The input is never mutated. Sorting is stable so equal keys
// keep their relative order; unparsable dates order after all valid ones.
func FilterAndSort(txs []Transaction, q Query) []Transaction {
	out := make([]Transaction, 0, len(txs))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, tx := range txs {
		if q.Type != "" && q.Type != FilterAll && string(tx.Type) != q.Type {
			continue
		}
		if term != "" && !matches(tx, term) {
			continue
		}
		out = append(out, tx)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch q.Sort {
		case DateAsc:
			return a.Date.Compare(b.Date) < 0
		case AmountDesc:
			return a.Amount.Cmp(b.Amount) > 0
		case AmountAsc:
			return a.Amount.Cmp(b.Amount) < 0
		default: // DateDesc and anything unrecognized
			return dateDescLess(a.Date, b.Date)
		}
	})
	return out
}

// matches reports whether any searchable field of the transaction contains
// the lowercased term.
func matches(tx Transaction, term string) bool {
	for _, field := range []string{tx.Item, tx.Description, string(tx.Category), tx.PaymentMode} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// dateDescLess orders most recent first while keeping unparsable dates last.
func dateDescLess(a, b Date) bool {
	if !a.IsValid() || !b.IsValid() {
		// Invalid after valid; two invalids are equal.
		return a.IsValid()
	}
	return a.Compare(b) > 0
}

// SortNotebooks returns a new slice of notebooks ordered per the given sort
// order. Name comparison is locale-aware; the default and fallback order is
// newest first. The input is never mutated.
func SortNotebooks(nbs []Notebook, order SortOrder) []Notebook {
	out := make([]Notebook, len(nbs))
	copy(out, nbs)

	var coll *collate.Collator
	if order == NameAsc || order == NameDesc {
		coll = collate.New(language.Und)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch order {
		case DateAsc:
			return a.CreatedAt < b.CreatedAt
		case NameAsc:
			return coll.CompareString(a.Name, b.Name) < 0
		case NameDesc:
			return coll.CompareString(a.Name, b.Name) > 0
		default: // DateDesc and anything unrecognized
			return a.CreatedAt > b.CreatedAt
		}
	})
	return out
}
