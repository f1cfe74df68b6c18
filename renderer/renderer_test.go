package renderer

import (
	"strings"
	"testing"

	"github.com/shouvik/trackit"
)

func TestSummaryMarkdown(t *testing.T) {
	nb := trackit.Notebook{Name: "Home", Currency: "$"}
	txs := []trackit.Transaction{
		{Item: "Salary", Type: trackit.Earning, Amount: trackit.ParseAmount("1000")},
		{Item: "Rent", Type: trackit.Expenditure, Category: "Bills & Utilities", Amount: trackit.ParseAmount("600")},
		{Item: "Groceries", Type: trackit.Expenditure, Category: "Food & Drink", Amount: trackit.ParseAmount("200")},
	}

	got := SummaryMarkdown(nb, trackit.Aggregate(txs))

	for _, want := range []string{
		"# Notebook Home",
		"Available Balance: $ 200",
		"+$1000",
		"-$800",
		"Bills & Utilities",
		"75%", // 600 of 800
		"25%", // 200 of 800
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown_NoExpenditures(t *testing.T) {
	nb := trackit.Notebook{Name: "Home", Currency: "$"}
	got := SummaryMarkdown(nb, trackit.Aggregate(nil))
	if strings.Contains(got, "Spending by Category") {
		t.Errorf("empty summary renders a breakdown:\n%s", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	nb := trackit.Notebook{Name: "Home", Currency: "₹"}
	txs := []trackit.Transaction{
		{ID: "t1", Date: trackit.DateOf("2024-01-05"), Item: "Chai", Type: trackit.Expenditure, Category: "Food & Drink", Amount: trackit.ParseAmount("20"), PaymentMode: "Cash"},
		{ID: "t2", Date: trackit.DateOf("2024-01-06"), Item: "Refund", Type: trackit.Earning, Amount: trackit.ParseAmount("150")},
	}

	got := TransactionsMarkdown(nb, txs)

	for _, want := range []string{"2024-01-05", "Chai", "-₹20", "+₹150"} {
		if !strings.Contains(got, want) {
			t.Errorf("listing missing %q:\n%s", want, got)
		}
	}

	if empty := TransactionsMarkdown(nb, nil); !strings.Contains(empty, "No activity found.") {
		t.Errorf("empty listing:\n%s", empty)
	}
}

func TestNotebooksMarkdown(t *testing.T) {
	nbs := []trackit.Notebook{
		{ID: "n1", Name: "Trips", Currency: "$", CreatedAt: 1716899000000, Transactions: []trackit.Transaction{{}}},
	}

	got := NotebooksMarkdown(nbs)
	for _, want := range []string{"Trips", "2024-05-28", "| 1 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("overview missing %q:\n%s", want, got)
		}
	}
}
