package trackit

import (
	"reflect"
	"testing"
)

func listing() []Transaction {
	return []Transaction{
		{ID: "t1", Date: DateOf("2024-01-10"), Item: "Weekly Grocery Run", Type: Expenditure, Category: "Food & Drink", Amount: ParseAmount("82.30"), PaymentMode: "Card"},
		{ID: "t2", Date: DateOf("2024-01-01"), Item: "Rent", Type: Expenditure, Category: "Bills & Utilities", Amount: ParseAmount("800")},
		{ID: "t3", Date: DateOf("2024-01-15"), Item: "Salary", Type: Earning, Category: "Salary", Amount: ParseAmount("3000"), PaymentMode: "Bank Transfer"},
		{ID: "t4", Date: DateOf("2024-01-10"), Item: "Cinema", Type: Expenditure, Category: "Entertainment", Amount: ParseAmount("15"), Description: "Evening show"},
	}
}

func ids(txs []Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func TestFilterAndSort(t *testing.T) {
	testCases := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "no filters keeps every transaction",
			query: Query{Type: FilterAll},
			want:  []string{"t3", "t1", "t4", "t2"}, // date-desc default, stable on equal dates
		},
		{
			name:  "type filter",
			query: Query{Type: string(Earning)},
			want:  []string{"t3"},
		},
		{
			name:  "search matches item case-insensitively",
			query: Query{Search: "grocery"},
			want:  []string{"t1"},
		},
		{
			name:  "search matches description",
			query: Query{Search: "evening"},
			want:  []string{"t4"},
		},
		{
			name:  "search matches payment mode",
			query: Query{Search: "bank"},
			want:  []string{"t3"},
		},
		{
			name:  "search matches category",
			query: Query{Search: "utilities"},
			want:  []string{"t2"},
		},
		{
			name:  "date ascending",
			query: Query{Sort: DateAsc},
			want:  []string{"t2", "t1", "t4", "t3"},
		},
		{
			name:  "amount descending",
			query: Query{Sort: AmountDesc},
			want:  []string{"t3", "t2", "t1", "t4"},
		},
		{
			name:  "amount ascending",
			query: Query{Sort: AmountAsc},
			want:  []string{"t4", "t1", "t2", "t3"},
		},
		{
			name:  "unrecognized order falls back to date descending",
			query: Query{Sort: SortOrder("bogus")},
			want:  []string{"t3", "t1", "t4", "t2"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterAndSort(listing(), tc.query))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FilterAndSort(%+v) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	txs := listing()
	original := ids(txs)

	FilterAndSort(txs, Query{Sort: AmountAsc})

	if got := ids(txs); !reflect.DeepEqual(got, original) {
		t.Errorf("input order changed: %v, want %v", got, original)
	}
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	once := FilterAndSort(listing(), Query{Sort: AmountDesc})
	twice := FilterAndSort(once, Query{Sort: AmountDesc})
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Errorf("sorting a sorted list changed the order: %v then %v", ids(once), ids(twice))
	}
}

func TestFilterAndSort_UnparsableDatesSortLast(t *testing.T) {
	txs := []Transaction{
		{ID: "bad", Date: DateOf("not a date"), Item: "Mystery", Type: Expenditure},
		{ID: "old", Date: DateOf("2020-05-01"), Item: "Old", Type: Expenditure},
		{ID: "new", Date: DateOf("2024-05-01"), Item: "New", Type: Expenditure},
	}

	for _, order := range []SortOrder{DateDesc, DateAsc} {
		got := ids(FilterAndSort(txs, Query{Sort: order}))
		if got[len(got)-1] != "bad" {
			t.Errorf("order %s: unparsable date not last: %v", order, got)
		}
	}
}

func TestSortNotebooks(t *testing.T) {
	nbs := []Notebook{
		{ID: "n1", Name: "alpha", CreatedAt: 300},
		{ID: "n2", Name: "Beta", CreatedAt: 100},
		{ID: "n3", Name: "gamma", CreatedAt: 200},
	}

	testCases := []struct {
		name  string
		order SortOrder
		want  []string
	}{
		{"newest first by default", SortOrder(""), []string{"n1", "n3", "n2"}},
		{"date ascending", DateAsc, []string{"n2", "n3", "n1"}},
		{"name ascending is case-insensitive", NameAsc, []string{"n1", "n2", "n3"}},
		{"name descending", NameDesc, []string{"n3", "n2", "n1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sorted := SortNotebooks(nbs, tc.order)
			got := make([]string, len(sorted))
			for i, nb := range sorted {
				got[i] = nb.ID
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SortNotebooks(%s) = %v, want %v", tc.order, got, tc.want)
			}
		})
	}

	if nbs[0].ID != "n1" || nbs[1].ID != "n2" || nbs[2].ID != "n3" {
		t.Error("SortNotebooks mutated its input")
	}
}
